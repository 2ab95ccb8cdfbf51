package shipment

import (
	"fmt"

	"shipcore/internal/pkg/errs"
)

// ServiceType identifies an optional add-on service purchased with a
// shipment. Each type carries a fixed fee percentage applied to the running
// quote subtotal at pricing time.
type ServiceType int

const (
	// ServiceUnknown represents an invalid or undefined service type.
	ServiceUnknown ServiceType = iota

	// ServiceInsurance covers the declared parcel value.
	ServiceInsurance

	// ServiceFragile adds protected handling for delicate cargo.
	ServiceFragile

	// ServiceSignatureRequired requires a recipient signature on delivery.
	ServiceSignatureRequired

	// ServicePriority expedites handling across the network.
	ServicePriority
)

// getServiceTypeStrings returns a map of ServiceType values to their string representations.
func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceUnknown:           "UNKNOWN",
		ServiceInsurance:         "INSURANCE",
		ServiceFragile:           "FRAGILE",
		ServiceSignatureRequired: "SIGNATURE_REQUIRED",
		ServicePriority:          "PRIORITY",
	}
}

// ServiceApplicationOrder returns the fixed, deterministic order in which
// service fees are applied to a quote. Repeated quoting with the same
// services always folds the fees in this order, which makes pricing
// idempotent regardless of the order services were requested in.
func ServiceApplicationOrder() []ServiceType {
	return []ServiceType{ServiceInsurance, ServiceFragile, ServiceSignatureRequired, ServicePriority}
}

// ServiceTypeFromString parses a service type from its canonical string form.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for serviceType, str := range getServiceTypeStrings() {
		if str == s && serviceType != ServiceUnknown {
			return serviceType, nil
		}
	}
	return ServiceUnknown, errs.NewValueIsInvalidErrorWithCause("service type",
		fmt.Errorf("%q is not a valid service type", s))
}

// Validate checks if the ServiceType value is valid.
func (t ServiceType) Validate() error {
	if _, ok := getServiceTypeStrings()[t]; !ok || t == ServiceUnknown {
		return errs.NewValueIsInvalidErrorWithCause("service type",
			fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

// String returns the canonical name of the service type.
// This method implements the fmt.Stringer interface.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// AdditionalService is a purchased add-on with its fee as computed against
// the quote subtotal at creation time. The cost is frozen thereafter: later
// tariff changes never reprice services already attached to a shipment.
type AdditionalService struct {
	serviceType ServiceType
	cost        float64
}

// NewAdditionalService creates an AdditionalService with a frozen cost.
// The cost must not be negative.
func NewAdditionalService(serviceType ServiceType, cost float64) (AdditionalService, error) {
	if err := serviceType.Validate(); err != nil {
		return AdditionalService{}, err
	}
	if cost < 0 {
		return AdditionalService{}, errs.NewValueIsInvalidErrorWithCause("service cost",
			fmt.Errorf("%g is negative", cost))
	}

	return AdditionalService{serviceType: serviceType, cost: cost}, nil
}

// Type returns the service type.
func (s AdditionalService) Type() ServiceType {
	return s.serviceType
}

// Cost returns the frozen fee of the service.
func (s AdditionalService) Cost() float64 {
	return s.cost
}

package discount

import "strings"

const (
	// ProductDiscountsAPIType is the function API type of product discount functions.
	ProductDiscountsAPIType = "product_discounts"

	// ExtensionListPageSize is how many functions one lookup inspects.
	// Functions past the first page are never found.
	ExtensionListPageSize = 25

	volumeTitleKeyword = "volume"
)

// ExtensionID names a deployed discount function. The zero value means absent.
type ExtensionID string

func (id ExtensionID) IsZero() bool {
	return id == ""
}

func (id ExtensionID) String() string {
	return string(id)
}

// ExtensionDescriptor is one entry of the Admin API function listing.
type ExtensionDescriptor struct {
	ID       ExtensionID
	Title    string
	APIType  string
	AppTitle string
}

// IsVolumeDiscount reports whether the function looks like the volume discount function.
func (d ExtensionDescriptor) IsVolumeDiscount() bool {
	return strings.Contains(strings.ToLower(d.Title), volumeTitleKeyword) ||
		d.APIType == ProductDiscountsAPIType
}

// SelectVolumeExtension returns the first matching descriptor in list order.
func SelectVolumeExtension(descriptors []ExtensionDescriptor) (ExtensionID, bool) {
	for _, d := range descriptors {
		if d.IsVolumeDiscount() && !d.ID.IsZero() {
			return d.ID, true
		}
	}
	return "", false
}

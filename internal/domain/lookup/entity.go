package lookup

// Resource enumerates the reference tables exposed through the lookup
// endpoint. The set is fixed at compile time; requests naming anything else
// resolve to nothing rather than reaching the database.
type Resource string

const (
	ResourceUnits      Resource = "units"
	ResourceBrand      Resource = "brand"
	ResourceCategories Resource = "categories"
	ResourceSegment    Resource = "segment"
	ResourceSections   Resource = "sections"
	ResourceBranches   Resource = "branches"
	ResourceCompany    Resource = "company"
	ResourceDivision   Resource = "division"
	ResourceSuppliers  Resource = "suppliers"
	ResourceOperation  Resource = "operation"
	ResourcePriceTypes Resource = "price_types"
)

var resources = map[string]Resource{
	string(ResourceUnits):      ResourceUnits,
	string(ResourceBrand):      ResourceBrand,
	string(ResourceCategories): ResourceCategories,
	string(ResourceSegment):    ResourceSegment,
	string(ResourceSections):   ResourceSections,
	string(ResourceBranches):   ResourceBranches,
	string(ResourceCompany):    ResourceCompany,
	string(ResourceDivision):   ResourceDivision,
	string(ResourceSuppliers):  ResourceSuppliers,
	string(ResourceOperation):  ResourceOperation,
	string(ResourcePriceTypes): ResourcePriceTypes,
}

// ParseResource maps a path segment to a known resource kind.
func ParseResource(s string) (Resource, bool) {
	r, ok := resources[s]
	return r, ok
}

// Option is a dropdown entry: a stable id, a display name, and an optional
// subtitle (e.g. a unit shortcut or branch code).
type Option struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle,omitempty"`
}

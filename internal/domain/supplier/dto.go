package supplier

type CreateSupplierRequest struct {
	SupplierName  string `json:"supplier_name" binding:"required,max=255"`
	ContactPerson string `json:"contact_person" binding:"max=255"`
	ContactNumber string `json:"contact_number" binding:"max=30"`
	Email         string `json:"email" binding:"omitempty,email,max=255"`
	Address       string `json:"address"`
}

type UpdateSupplierRequest struct {
	SupplierName  *string `json:"supplier_name" binding:"omitempty,max=255"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	ContactNumber *string `json:"contact_number" binding:"omitempty,max=30"`
	Email         *string `json:"email" binding:"omitempty,email,max=255"`
	Address       *string `json:"address"`
}

type ListFilters struct {
	Search string `form:"q"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

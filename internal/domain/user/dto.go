package user

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`

	// Filled by the handler, not the client.
	IPAddress string `json:"-"`
}

type RFIDLoginRequest struct {
	RF string `json:"rf" binding:"required"`

	IPAddress string `json:"-"`
}

// SessionUser is the claim set echoed back to the login caller. It mirrors
// what gets encoded into the access and refresh cookies.
type SessionUser struct {
	Sub      string `json:"sub"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
	RoleID   *int64 `json:"role_id,omitempty"`
	AuthKind string `json:"auth_kind,omitempty"`
	JTI      string `json:"jti"`
}

// LoginResult carries the minted tokens alongside the claim echo. Tokens are
// delivered as cookies by the handler and never appear in the JSON body.
type LoginResult struct {
	User         SessionUser
	AccessToken  string
	RefreshToken string
}

type CreateUserRequest struct {
	Email      string   `json:"user_email" binding:"required,email"`
	Password   string   `json:"user_password" binding:"required,min=8"`
	FirstName  string   `json:"user_fname" binding:"required"`
	MiddleName string   `json:"user_mname"`
	LastName   string   `json:"user_lname" binding:"required"`
	Contact    string   `json:"user_contact"`
	Province   string   `json:"user_province"`
	City       string   `json:"user_city"`
	Barangay   string   `json:"user_brgy"`
	Department string   `json:"user_department"`
	Position   string   `json:"user_position"`
	SSS        string   `json:"user_sss"`
	PhilHealth string   `json:"user_philhealth"`
	TIN        string   `json:"user_tin"`
	Tags       []string `json:"user_tags"`
	IsAdmin    bool     `json:"is_admin"`
	RoleID     *int64   `json:"role_id"`
	RFID       string   `json:"rf_id"`
}

// UpdateUserRequest uses pointer fields so absent keys leave columns
// untouched. There is deliberately no session_token field here: the session
// pointer is written only by the login flow.
type UpdateUserRequest struct {
	Email      *string  `json:"user_email" binding:"omitempty,email"`
	Password   *string  `json:"user_password" binding:"omitempty,min=8"`
	FirstName  *string  `json:"user_fname"`
	MiddleName *string  `json:"user_mname"`
	LastName   *string  `json:"user_lname"`
	Contact    *string  `json:"user_contact"`
	Province   *string  `json:"user_province"`
	City       *string  `json:"user_city"`
	Barangay   *string  `json:"user_brgy"`
	Department *string  `json:"user_department"`
	Position   *string  `json:"user_position"`
	SSS        *string  `json:"user_sss"`
	PhilHealth *string  `json:"user_philhealth"`
	TIN        *string  `json:"user_tin"`
	Tags       []string `json:"user_tags"`
	IsAdmin    *bool    `json:"is_admin"`
	RoleID     *int64   `json:"role_id"`
	RFID       *string  `json:"rf_id"`
	Status     *string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ListFilters struct {
	Search string `form:"q"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

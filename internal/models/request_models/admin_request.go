package request_models

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AddAdminRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

package schemas

type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type RegisterFormResponse struct {
	MinLength int    `json:"minLength"`
	Symbols   string `json:"symbols"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

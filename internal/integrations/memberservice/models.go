package memberservice

// Member профиль клиента из MemberService
// Этому сервису нужны только идентификация и отображаемое имя,
// остальные поля профиля ведёт MemberService
type Member struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone,omitempty"`
}

// ErrorResponse модель ошибки от MemberService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

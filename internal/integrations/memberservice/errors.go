package memberservice

import "errors"

var (
	// ErrMemberNotFound возвращается, когда клиент не найден в MemberService
	ErrMemberNotFound = errors.New("member not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("memberservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("memberservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// MemberService недоступен - доска показывается без имён клиентов
	ErrServiceDegraded = errors.New("memberservice unavailable: graceful degradation applied")
)

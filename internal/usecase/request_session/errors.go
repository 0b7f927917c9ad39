package request_session

import "errors"

var (
	// ErrNoActivePackage возвращается, когда у клиента нет активного пакета,
	// покрывающего тип и дату запрашиваемой сессии
	ErrNoActivePackage = errors.New("request_session: no active package covers this date")

	// ErrQuotaExceeded возвращается в строгом режиме (enforce_quota_cap),
	// когда квота по типу сессий уже исчерпана
	ErrQuotaExceeded = errors.New("request_session: quota for this session type is exhausted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_session: internal error")
)

package quota

import "errors"

var (
	// ErrNoActivePackage возвращается, когда у клиента нет активного пакета,
	// покрывающего запрошенную дату - запись невозможна
	ErrNoActivePackage = errors.New("quota: no active package covers this date")

	// ErrSessionNotConfirmed возвращается при запросе ранга неподтверждённой сессии
	ErrSessionNotConfirmed = errors.New("quota: rank is defined only for confirmed sessions")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quota: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("quota: internal error")
)

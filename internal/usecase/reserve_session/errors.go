package reserve_session

import "errors"

var (
	// ErrNoActivePackage возвращается, когда у клиента нет активного пакета,
	// покрывающего тип и дату бронируемой сессии
	ErrNoActivePackage = errors.New("reserve_session: no active package covers this date")

	// ErrQuotaExceeded возвращается в строгом режиме (enforce_quota_cap),
	// когда квота по типу сессий уже исчерпана
	ErrQuotaExceeded = errors.New("reserve_session: quota for this session type is exhausted")

	// ErrSlotConflict возвращается в exclusive-режиме, когда слот уже занят
	// подтверждённой сессией
	ErrSlotConflict = errors.New("reserve_session: slot already holds a confirmed session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_session: internal error")
)

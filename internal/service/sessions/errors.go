package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrAlreadyCancelled возвращается при попытке изменить отменённую сессию
	// cancelled - терминальный статус, из него переходов нет
	ErrAlreadyCancelled = errors.New("session is already cancelled")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid session status transition")

	// ErrSlotConflict возвращается в exclusive-режиме, когда слот уже занят
	// подтверждённой сессией
	ErrSlotConflict = errors.New("slot already holds a confirmed session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)

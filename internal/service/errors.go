package service

import "errors"

// Типизированные ошибки уровня сервиса. API-слой отображает их в коды ответа,
// фоновый инференс их не порождает.
var (
	// ErrPersonNotFound — человек с указанным id не зарегистрирован
	ErrPersonNotFound = errors.New("person not found")
	// ErrRoleMismatch — человек существует, но его роль не подходит для операции
	ErrRoleMismatch = errors.New("person role mismatch")
	// ErrAssignmentNotFound — назначение с указанным id не существует
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrActiveAssignmentExists — у участника уже есть активное назначение
	ErrActiveAssignmentExists = errors.New("active assignment already exists")
)

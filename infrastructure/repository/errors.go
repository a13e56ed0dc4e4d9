package repository

import "errors"

// ErrDuplicated indica violação de unicidade na gravação
var ErrDuplicated = errors.New("registro duplicado")

package service

import "errors"

// 错误分级：handler 按 errors.Is 映射 HTTP 状态码。
// 仓储层的唯一键/外键冲突在 service 内转成这些类别，不向上泄驱动错误码。
var (
    ErrValidation = errors.New("validation failed")
    ErrConflict   = errors.New("conflict")
    ErrNotFound   = errors.New("not found")
)

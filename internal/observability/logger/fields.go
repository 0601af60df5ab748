package logger

import (
	"go.uber.org/zap"
)

// HTTP

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }
func Bytes(v int) zap.Field        { return zap.Int("bytes", v) }
func ClientIP(v string) zap.Field  { return zap.String("client_ip", v) }

// Directory

func UserID(v int64) zap.Field      { return zap.Int64("user_id", v) }
func RoleID(v int64) zap.Field      { return zap.Int64("role_id", v) }
func RoleName(v string) zap.Field   { return zap.String("role", v) }
func Collection(v string) zap.Field { return zap.String("collection", v) }
func Version(v uint64) zap.Field    { return zap.Uint64("version", v) }

// Term es un término de búsqueda escrito por el usuario; usar en debug en prod.
func Term(v string) zap.Field { return zap.String("term", v) }

// System

// Component identifica el módulo que emite el log.
func Component(v string) zap.Field { return zap.String("component", v) }

// Op identifica la operación, ej: "Users.Edit".
func Op(v string) zap.Field { return zap.String("op", v) }

// Layer: controller, service o store.
func Layer(v string) zap.Field { return zap.String("layer", v) }

func Err(err error) zap.Field { return zap.Error(err) }

func Count(v int) zap.Field { return zap.Int("count", v) }

func Key(v string) zap.Field { return zap.String("key", v) }

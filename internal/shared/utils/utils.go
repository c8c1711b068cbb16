// Вспомогательные функции общего назначения.
package utils

// Ptr возвращает указатель на значение v.
func Ptr[T any](v T) *T {
	return &v
}

// StrPtr возвращает указатель на строку (удобно для опциональных полей, например last_fed).
func StrPtr(s string) *string {
	return Ptr(s)
}

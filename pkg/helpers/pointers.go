package helpers

// PtrOf returns a pointer to a copy of t.
//
// Example:
//
//	formatter.Convert(in, openai.WithOptions(&openai.ConvertOptions{Strict: helpers.PtrOf(true)}))
func PtrOf[T any](t T) *T { return &t }

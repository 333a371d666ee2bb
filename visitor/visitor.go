package visitor

// Visitor iterates (key, element) pairs calling supplied callback,
// iteration stops when callback returns false or an error, the error is returned.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

package iocli

// IO abstracts terminal input/output so the command loop can be
// exercised in tests with buffers instead of a real terminal.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}

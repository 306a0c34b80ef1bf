package iostreams

import "fmt"

// PrintSuccess prints "✓ message" (or "[ok] message") to stderr.
func (s *IOStreams) PrintSuccess(format string, args ...any) error {
	cs := s.ColorScheme()
	_, err := fmt.Fprintf(s.ErrOut, "%s %s\n", cs.SuccessIcon(), fmt.Sprintf(format, args...))
	return err
}

// PrintWarning prints "! message" (or "[warn] message") to stderr.
func (s *IOStreams) PrintWarning(format string, args ...any) error {
	cs := s.ColorScheme()
	_, err := fmt.Fprintf(s.ErrOut, "%s %s\n", cs.WarningIcon(), fmt.Sprintf(format, args...))
	return err
}

// PrintInfo prints "ℹ message" (or "[info] message") to stderr.
func (s *IOStreams) PrintInfo(format string, args ...any) error {
	cs := s.ColorScheme()
	_, err := fmt.Fprintf(s.ErrOut, "%s %s\n", cs.InfoIcon(), fmt.Sprintf(format, args...))
	return err
}

// PrintFailure prints "✗ message" (or "[error] message") to stderr.
func (s *IOStreams) PrintFailure(format string, args ...any) error {
	cs := s.ColorScheme()
	_, err := fmt.Fprintf(s.ErrOut, "%s %s\n", cs.FailureIcon(), fmt.Sprintf(format, args...))
	return err
}

package lib

// Commands maps cli command names to their implementations. Command packages
// register themselves via init().
var Commands = map[string]func(){}

// Args maps cli command names to their go-arg argument structs, used by the
// root usage printer.
var Args = map[string]any{}

func Contains(parts []string, part string) bool {
	for _, p := range parts {
		if p == part {
			return true
		}
	}
	return false
}

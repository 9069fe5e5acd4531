package utils

// Assert panics when condition does not hold. A single message becomes the
// panic value; callers format it with fmt.Sprintf.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}

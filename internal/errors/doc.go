// Package errors provides coded, categorized errors for statebind.
//
// Every error has a code registered in this package that maps to a short
// message and a longer explanation. Call sites add detail and a hint:
//
//	err := errors.New("E102").
//	    WithDetail("port 70000 is out of range").
//	    WithSuggestion("Use a port between 0 and 65535")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E102: Invalid server port
//	//
//	//   port 70000 is out of range
//	//
//	//   Hint: Use a port between 0 and 65535
//
// Binder operations never return errors: failures in reactions and
// listeners panic through to the caller. These codes cover configuration
// and the WebSocket transport.
package errors

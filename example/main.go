// Package main demonstrates usage of the scg-anyerror package.
package main

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-anyerror/anyerror"
)

func main() {
	// Capture a wrapped error chain into a self-contained snapshot.
	cause := errors.New("row not found")
	err := fmt.Errorf("load customer 42: %w", cause)

	snap := anyerror.Capture(err)
	fmt.Println(snap.Error())  // plain message, identical to err.Error()
	fmt.Println(snap.String()) // diagnostic rendering with type labels
	fmt.Println(snap.TypeLabel(), "->", snap.Cause().TypeLabel())

	// Serialize for transport or storage.
	data, _ := anyerror.Marshal(snap)
	fmt.Println(string(data))

	// Parse it back on the consuming side.
	decoded, decodeErr := anyerror.Unmarshal(data)
	if decodeErr != nil {
		var malformed *anyerror.MalformedPayloadError
		if errors.As(decodeErr, &malformed) {
			fmt.Println("rejected at depth", malformed.Depth)
		}
		return
	}

	// A decoded snapshot is still a walkable error chain.
	fmt.Println(decoded.Message(), "/", errors.Unwrap(decoded).Error())
}

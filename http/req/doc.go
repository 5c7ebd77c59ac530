/*
Package req provides a helper for parsing payloads in an HTTP request.

It supports url-encoded form bodies and payloads encoded in query parameters.
In both cases, package req expects to parse payloads into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, "schema" tags match keys in the payload to fields on the struct.
Second, "validate" tags set the requirements the payload's data must meet.

	type addForm struct {
		Destination string `schema:"destination" validate:"max=64"`
		ReturnTo    string `schema:"return_to"`
	}

Errors are translated to wanderlust sentinel errors in order to provide a consistent interface
for issues that arise across encoding types.
*/
package req

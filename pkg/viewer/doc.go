// Package viewer is the HTTP client for the graph visualization service.
//
// The service stores a posted graph and answers with an identifier. The
// graph can then be viewed in a browser:
//
//	POST http://<host>/api/graphs   body: graph.Document (JSON)
//	-> {"id": "ea3e11cf-...", ...}
//	view at http://<host>/graphs/<id>
//
// # Usage
//
//	c, err := viewer.New(viewer.DefaultHost)
//	if err != nil {
//	    return err
//	}
//	receipt, err := c.Submit(ctx, doc)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(receipt.URL)
//
// # Errors
//
// Submit makes exactly one request and does not retry. Failures carry a
// code from [github.com/quickgraph/quickgraph/pkg/errors]:
//
//   - NETWORK_ERROR: transport failure or a non-2xx status
//   - TIMEOUT: the request deadline passed
//   - INVALID_RESPONSE: the body is not a JSON object
//   - MISSING_ID: the object has no usable "id"
//
// Context cancellation stays visible through errors.Is(err, context.Canceled).
package viewer

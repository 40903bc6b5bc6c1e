// Package blogsdk holds the wire types of the blog HTTP API, its error
// envelope, and a small Go client.
//
// The server decodes requests into these types and validates them with
// their Validate method; the client is used by the integration and
// end-to-end suites and by anything else that wants to talk to the API:
//
//	c := blogsdk.NewClient("http://localhost:8000")
//	if _, err := c.Login(ctx, "alice@example.com", "secret123"); err != nil {
//		return err
//	}
//	me, err := c.Me(ctx)
//
// Login and Refresh remember the access token for later calls, and the
// refresh token travels in the client's cookie jar like it would in a
// browser.
package blogsdk

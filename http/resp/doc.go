/*
Package resp provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides four ways of responding to an HTTP request:
  - rendering HTML templates
  - rendering JSON data
  - redirecting
  - writing a plain-text error

Each handler describes its response by passing Fn options to a Responder method:

	d.Html(w, r, resp.Authed(), resp.Tmpls("tmpl/home.tmpl"), resp.Data(data))
	d.Redirect(w, r, resp.Url("/paris"), resp.Param("msg", "Successfully added to your list."))
*/
package resp

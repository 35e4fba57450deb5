// Package auth provides the authorization layer for the dashboard.
//
// Authorization is a static Role-Based Access Control (RBAC) table: three
// known role tags, each granted a fixed set of four capabilities. The table
// is a process-wide constant loaded at init and never mutated, so no
// synchronization is needed. Unknown role tags are denied every capability
// (fail-closed).
//
// # Role Resolution
//
// There is no authentication: the acting role is whatever the client asserts
// with the request. That trust boundary is isolated behind the RoleProvider
// interface so a future version can plug in verified identity without
// touching handler logic. The default RequestRole provider reads the role
// from the "role" query parameter on GET requests and from the "role" JSON
// body field on POST requests.
//
// # Capability Checking
//
//	// pure table lookup, fail-closed
//	if !auth.Can(role, auth.CapChangeStatus) {
//	    // deny
//	}
//
//	// resolve the acting role for a fiber request
//	role := roles.Resolve(c)
package auth

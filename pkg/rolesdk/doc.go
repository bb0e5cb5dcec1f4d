/*
Package rolesdk provides the shared wire types for the Clubhouse roles
service API and a small read-only client for consuming it.

The roles service answers two questions for membership authorization:
"does role A have permission to manage role B" and "which roles may manage
role B". The client exposes the corresponding read endpoints:

	client := rolesdk.NewClient("https://roles.internal.example.com")

	// All roles, in registry order
	roles, err := client.ListRoles(ctx)

	// A single role
	role, err := client.GetRole(ctx, "curator")
	if rolesdk.IsNotFound(err) {
		// unknown role name
	}

	// Who may grant/revoke "curator" (the privilege escalation guard)
	managers, err := client.ManagerRoles(ctx, "curator")

Deployments that set an auth secret require a bearer token:

	client = client.WithToken(serviceToken)
*/
package rolesdk

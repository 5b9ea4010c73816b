package models

// Permissions is a bitfield of named permission flags. Flag values are fixed
// powers of two; new flags must take the next unused bit and existing bits are
// never renumbered, since stored role rows encode them as plain integers.
type Permissions int64

const (
	PermSuperadmin Permissions = 1 << iota

	PermUsersView
	PermUsersUpdate

	PermGroupsCreate
	PermGroupsRead
	PermGroupsUpdate
	PermGroupsDelete

	PermRolesCreate
	PermRolesRead
	PermRolesUpdate
	PermRolesDelete
)

// permissionFlags lists every known flag in declaration order.
var permissionFlags = []struct {
	Flag Permissions
	Name string
}{
	{PermSuperadmin, "SUPERADMIN"},
	{PermUsersView, "USERS_VIEW"},
	{PermUsersUpdate, "USERS_UPDATE"},
	{PermGroupsCreate, "GROUPS_CREATE"},
	{PermGroupsRead, "GROUPS_READ"},
	{PermGroupsUpdate, "GROUPS_UPDATE"},
	{PermGroupsDelete, "GROUPS_DELETE"},
	{PermRolesCreate, "ROLES_CREATE"},
	{PermRolesRead, "ROLES_READ"},
	{PermRolesUpdate, "ROLES_UPDATE"},
	{PermRolesDelete, "ROLES_DELETE"},
}

var permissionsByName = func() map[string]Permissions {
	m := make(map[string]Permissions, len(permissionFlags))
	for _, f := range permissionFlags {
		m[f.Name] = f.Flag
	}
	return m
}()

// Has reports whether every bit of flag is set.
func (p Permissions) Has(flag Permissions) bool {
	return p&flag == flag
}

// HasAny reports whether any bit of flag is set.
func (p Permissions) HasAny(flag Permissions) bool {
	return p&flag != 0
}

// Add returns the bitfield with flag set.
func (p Permissions) Add(flag Permissions) Permissions {
	return p | flag
}

// Remove returns the bitfield with flag cleared.
func (p Permissions) Remove(flag Permissions) Permissions {
	return p &^ flag
}

// Names enumerates the set flags in declaration order.
func (p Permissions) Names() []string {
	names := make([]string, 0, len(permissionFlags))
	for _, f := range permissionFlags {
		if p.Has(f.Flag) {
			names = append(names, f.Name)
		}
	}
	return names
}

// CombinePermissions folds the named flags into one bitfield. It returns
// ErrUnknownPermission if any name is not a known flag.
func CombinePermissions(names ...string) (Permissions, error) {
	var p Permissions
	for _, name := range names {
		flag, ok := permissionsByName[name]
		if !ok {
			return 0, ErrUnknownPermission
		}
		p |= flag
	}
	return p, nil
}

// ParsePermissionName resolves a single flag name to its value.
func ParsePermissionName(name string) (Permissions, error) {
	flag, ok := permissionsByName[name]
	if !ok {
		return 0, ErrUnknownPermission
	}
	return flag, nil
}

// AllPermissionNames returns every known flag name in declaration order.
func AllPermissionNames() []string {
	names := make([]string, len(permissionFlags))
	for i, f := range permissionFlags {
		names[i] = f.Name
	}
	return names
}

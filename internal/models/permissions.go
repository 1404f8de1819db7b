package models

// Permission constants
const (
	// Storage accrual
	PermissionAccrualRun = "accrual:run"

	// Warehouse package lifecycle
	PermissionPackageWrite = "package:write"
	PermissionFeeOverride  = "fee:override"

	// Pricing zone catalog
	PermissionZonesAdmin = "zones:admin"
)

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleOperator:
		return []string{
			PermissionAccrualRun,
			PermissionPackageWrite,
			PermissionFeeOverride,
			PermissionZonesAdmin,
		}
	default:
		return []string{}
	}
}

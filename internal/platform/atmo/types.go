package atmo

// Project is a per-user grouping for launched resources.
type Project struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// UserRef is the nested user object carried by identities.
type UserRef struct {
	Username string `json:"username"`
}

// Identity binds a user to a provider account.
type Identity struct {
	UUID string  `json:"uuid"`
	User UserRef `json:"user"`
}

// AllocationSource is a named quota pool that instance launches draw from.
type AllocationSource struct {
	UUID           string `json:"uuid"`
	Name           string `json:"name"`
	ComputeAllowed int    `json:"compute_allowed"`
}

// ImageVersion is a published version of an image. Machines backing the
// version are fetched separately through the version's URL.
type ImageVersion struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Image is a launchable application image.
type Image struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Versions []ImageVersion `json:"versions"`
}

// Machine is a provider machine backing an image version. Its UUID is the
// source alias used when creating an instance.
type Machine struct {
	UUID string `json:"uuid"`
}

// Size is an instance flavor. The alias is what the create call accepts.
type Size struct {
	Alias string `json:"alias"`
	Name  string `json:"name"`
}

// ResourceRef is a nested reference carried by instances and volumes,
// used to build v1 action URLs.
type ResourceRef struct {
	UUID string `json:"uuid"`
}

// Instance is a launched compute instance.
//
// Status is the primary lifecycle state ("build", "active", "error", ...).
// Activity is a secondary field naming an in-progress background operation;
// it is "" or "N/A" once the instance has settled.
type Instance struct {
	UUID     string      `json:"uuid"`
	Name     string      `json:"name"`
	Status   string      `json:"status"`
	Activity string      `json:"activity"`
	Provider ResourceRef `json:"provider"`
	Identity ResourceRef `json:"identity"`
}

// Volume is a block storage volume.
type Volume struct {
	UUID     string      `json:"uuid"`
	Name     string      `json:"name"`
	Provider ResourceRef `json:"provider"`
	Identity ResourceRef `json:"identity"`
}

// InstanceCreateOpts holds all parameters for creating an instance.
type InstanceCreateOpts struct {
	Name               string
	SourceAlias        string
	SizeAlias          string
	AllocationSourceID string
	ProjectID          string
	IdentityID         string
	Scripts            []string
}

// Instance status and activity codes reported by the control plane.
const (
	StatusActive = "active"
	StatusError  = "error"

	// ActivityNone and ActivityNA both indicate no pending background
	// activity; the control plane reports either depending on version.
	ActivityNone = ""
	ActivityNA   = "N/A"
)

// Settled reports whether the instance is active with no pending activity.
// Status alone is not sufficient: an instance can be "active" while still
// running a deploy activity.
func (i *Instance) Settled() bool {
	return i.Status == StatusActive && (i.Activity == ActivityNone || i.Activity == ActivityNA)
}

// Errored reports whether the control plane marked the instance failed.
func (i *Instance) Errored() bool {
	return i.Status == StatusError
}

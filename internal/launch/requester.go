package launch

import (
	"context"

	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// SubmitLaunch submits one instance-creation request using the resolved
// context. This is a single request/response; it does not wait for
// provisioning. Any control-plane rejection (quota, invalid size, image
// not launchable) comes back as a LaunchError attributed to the account.
func SubmitLaunch(ctx context.Context, acct *AccountContext) (*InstanceHandle, error) {
	instance, err := acct.Client.CreateInstance(ctx, atmo.InstanceCreateOpts{
		Name:               acct.InstanceName,
		SourceAlias:        acct.SourceAlias,
		SizeAlias:          acct.SizeAlias,
		AllocationSourceID: acct.AllocationSourceID,
		ProjectID:          acct.ProjectID,
		IdentityID:         acct.IdentityID,
	})
	if err != nil {
		return nil, &LaunchError{Username: acct.Username, Err: err}
	}
	return &InstanceHandle{ID: instance.UUID, Username: acct.Username}, nil
}

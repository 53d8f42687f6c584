// Package launch implements the multi-account batch launch orchestrator.
//
// For each account in a batch, an independent pipeline authenticates the
// account, resolves its project/identity/allocation-source/image context,
// submits one instance-creation request, and tracks the instance through
// the asynchronous provisioning lifecycle until it settles, fails, or
// exceeds its deadline. Pipelines run concurrently and never share state;
// a failure in one account is converted into a classified outcome record
// at the pipeline boundary and never aborts its siblings.
package launch

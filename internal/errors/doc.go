// Package errors provides structured errors for the alchemy service.
//
// Errors carry a Code, a user-facing Message, an optional Cause and a Meta
// map. Repositories return NotFound/Unavailable, orchestrators return
// InvalidArgument/Aborted, and handlers convert with ToGRPCError.
//
// Creating errors:
//
//	err := errors.NotFound("alchemical index not found")
//	err := errors.InvalidArgumentf("unknown grant mode: %s", mode)
//
// Adding metadata:
//
//	err := errors.NotFoundf("actor %s not found", id).
//	    WithMeta("actor_id", id)
//
// Wrapping errors keeps the original code when the cause is an *Error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to save alchemical index")
//	}
//
// Validating configuration:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("namespace", cfg.Namespace, vb)
//	errors.ValidateEnum("grant_mode", cfg.GrantMode, modes, vb)
//	return vb.Build()
//
// Context errors keep their meaning through FromContext:
//
//	if err := ctx.Err(); err != nil {
//	    return errors.FromContext(err, "index build canceled")
//	}
//
// Meta travels as a google.protobuf.Struct status detail; FromGRPCError on
// the client side restores it.
package errors

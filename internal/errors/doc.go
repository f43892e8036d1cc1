// Package errors provides structured, code-carrying errors for the sheet service.
//
// Errors carry a Code, a user-facing Message, an optional Cause and optional
// metadata. Wrapping preserves the code of the innermost *Error so that a
// repository NotFound is still a NotFound after the orchestrator adds context.
//
// # Basic Usage
//
//	err := errors.SlotEmpty(slot)
//	err := errors.IndexOutOfRange("row", idx, n)
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save character")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("slot", input.Slot, vb)
//	errors.ValidateRange("SHEET_GRPC_PORT", port, 1, 65535, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer guidelines
//
// Repositories return SlotEmpty for a slot never written and SlotUnreadable
// for a payload that no longer decodes into a character; IsAbsentSlot covers
// both, and the orchestrator treats either as a blank sheet. Row operations
// report bad positions with IndexOutOfRange. Handlers convert to gRPC status
// with ToGRPCError, carrying the Meta* keys as status details.
package errors

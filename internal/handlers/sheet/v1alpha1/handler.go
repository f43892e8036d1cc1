// Package v1alpha1 handles the sheet gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/services/sheet"
)

// HandlerConfig holds dependencies for the sheet handler
type HandlerConfig struct {
	SheetService sheet.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.SheetService == nil {
		return errors.InvalidArgument("sheet service is required")
	}
	return nil
}

// Handler implements SheetServiceServer on top of sheet.Service
type Handler struct {
	sheetService sheet.Service
}

// NewHandler creates a new sheet handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService: cfg.SheetService,
	}, nil
}

var _ SheetServiceServer = (*Handler)(nil)

// GetCharacter returns {"character"}
func (h *Handler) GetCharacter(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.sheetService.Get(ctx, &sheet.GetInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(characterResponse(out.Character, nil))
}

// UpdateField reads {"key", "value"} and returns {"character"}
func (h *Handler) UpdateField(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &sheet.UpdateFieldInput{
		Key:   r.required("key"),
		Value: r.value("value"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.UpdateField(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(characterResponse(out.Character, nil))
}

// SetRace reads {"race"} and returns {"character", "talentCleared",
// "allowedTalents"}
func (h *Handler) SetRace(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &sheet.SetRaceInput{Race: r.str("race")}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.SetRace(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(characterResponse(out.Character, map[string]*structpb.Value{
		"talentCleared":  structpb.NewBoolValue(out.TalentCleared),
		"allowedTalents": stringList(out.AllowedTalents),
	}))
}

// AddRow reads {"collection", "index"?} and returns {"character", "index"}
func (h *Handler) AddRow(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &sheet.AddRowInput{Collection: r.collection("collection")}
	input.Index, _ = r.optionalInt("index")
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.AddRow(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(characterResponse(out.Character, map[string]*structpb.Value{
		"index": structpb.NewNumberValue(float64(out.Index)),
	}))
}

// AddFromCatalog reads {"collection", "key", "filters"?, "children"?} and
// returns {"character"}
func (h *Handler) AddFromCatalog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &sheet.AddFromCatalogInput{
		Collection: r.collection("collection"),
		Key:        r.required("key"),
		Filters:    r.stringMap("filters"),
		Children:   r.strings("children"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.AddFromCatalog(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(characterResponse(out.Character, nil))
}

// MoveRow reads {"collection", "from", "to"} and returns {"character"}
func (h *Handler) MoveRow(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &sheet.MoveRowInput{
		Collection: r.collection("collection"),
		From:       r.integer("from"),
		To:         r.integer("to"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.MoveRow(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(characterResponse(out.Character, nil))
}

// RemoveRow reads {"collection", "index"} and returns {"character"}
func (h *Handler) RemoveRow(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &sheet.RemoveRowInput{
		Collection: r.collection("collection"),
		Index:      r.integer("index"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.RemoveRow(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(characterResponse(out.Character, nil))
}

// ListOptions reads {"collection", "filters"?, "editIndex"?} and returns
// {"options", "filters", "selected"}
func (h *Handler) ListOptions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &sheet.ListOptionsInput{
		Collection: r.collection("collection"),
		Filters:    r.stringMap("filters"),
	}
	input.EditIndex, _ = r.optionalInt("editIndex")
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.ListOptions(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"options":  optionsValue(out.Options),
		"filters":  filtersValue(out.Filters),
		"selected": structpb.NewStringValue(out.Selected),
	}}, nil
}

// Export reads {"indent"?} and returns {"data"} holding the JSON text
func (h *Handler) Export(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &sheet.ExportInput{Indent: r.boolean("indent")}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.Export(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"data": structpb.NewStringValue(string(out.Data)),
	}}, nil
}

// Import reads {"data"}, either JSON text or an object, and returns
// {"character"}
func (h *Handler) Import(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	if !r.has("data") {
		r.invalid("data", "is required")
	}
	input := &sheet.ImportInput{Data: r.rawJSON("data")}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.Import(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(characterResponse(out.Character, nil))
}

// Reset returns {"character"} holding the blank sheet
func (h *Handler) Reset(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.sheetService.Reset(ctx, &sheet.ResetInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(characterResponse(out.Character, nil))
}

func respond(resp *structpb.Struct, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

package sellado

import "fmt"

// EditOp is one kind of operator action on a Form.
type EditOp string

const (
	OpSetField  EditOp = "set_field"
	OpSetDate   EditOp = "set_date"
	OpSetOffset EditOp = "set_offset"
	OpSelectAct EditOp = "select_act"
	OpCopyBase  EditOp = "copy_base"
	OpReset     EditOp = "reset"
)

// Edit is a single field change. For OpSelectAct Value holds the act code;
// for OpSetDate a YYYY-MM-DD date; for OpSetOffset a day count.
type Edit struct {
	Op    EditOp `json:"op" binding:"required,oneof=set_field set_date set_offset select_act copy_base reset"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// NeedsAct reports whether applying e requires the act configuration.
func (e Edit) NeedsAct() bool {
	return e.Op == OpSelectAct || e.Op == OpReset
}

// Apply mutates f by one edit and recalculates. act is consulted only by
// OpSelectAct and OpReset.
func (f *Form) Apply(today Date, e Edit, act Act) error {
	switch e.Op {
	case OpSetField:
		return f.SetField(e.Field, e.Value)
	case OpSetDate:
		field, err := ParseDateField(e.Field)
		if err != nil {
			return err
		}
		d, err := ParseDate(e.Value)
		if err != nil {
			return err
		}
		f.Schedule.SetDate(today, field, d)
	case OpSetOffset:
		field, err := ParseOffsetField(e.Field)
		if err != nil {
			return err
		}
		f.Schedule.SetOffset(today, field, ParseInt(e.Value))
	case OpSelectAct:
		f.SelectAct(today, act)
		return nil
	case OpCopyBase:
		f.CopyBaseToRegister()
		return nil
	case OpReset:
		f.ResetForNewEntry(act)
		return nil
	default:
		return fmt.Errorf("unknown edit op %q", e.Op)
	}
	f.Recalculate()
	return nil
}

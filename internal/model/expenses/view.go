package expenses

import (
	"context"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// State is one of Loading, Ready or Failed.
type State interface {
	state()
}

// Loading is the state of a view that has not finished its first fetch.
type Loading struct{}

// Ready shows List. Err is an inline message from the last add attempt;
// the form stays usable.
type Ready struct {
	List expense.List
	Err  string
}

// Failed replaces the whole view and is terminal for the mount.
type Failed struct {
	Err string
}

func (Loading) state() {}
func (Ready) state()   {}
func (Failed) state()  {}

type syncer interface {
	FetchAll(ctx context.Context, userID int64) (expense.List, error)
	AddExpense(ctx context.Context, userID int64, draft *expense.Draft) (expense.List, error)
}

// View is one mount of the expense list for a client profile.
type View struct {
	userID int64
	sync   syncer
	state  State
	draft  expense.Draft
}

func NewView(sync syncer, userID int64) *View {
	return &View{
		userID: userID,
		sync:   sync,
		state:  Loading{},
	}
}

func (v *View) State() State {
	return v.state
}

func (v *View) Draft() expense.Draft {
	return v.draft
}

// Mount performs the initial fetch. It is a no-op once the view left Loading.
func (v *View) Mount(ctx context.Context) State {
	if _, ok := v.state.(Loading); !ok {
		return v.state
	}

	list, err := v.sync.FetchAll(ctx, v.userID)
	if err != nil {
		v.state = Failed{Err: Message(err)}
		return v.state
	}
	v.state = Ready{List: list}
	return v.state
}

// Add submits the view's draft after applying edit to it. Only a Ready view
// accepts submissions.
func (v *View) Add(ctx context.Context, edit func(d *expense.Draft)) State {
	ready, ok := v.state.(Ready)
	if !ok {
		return v.state
	}
	if edit != nil {
		edit(&v.draft)
	}

	v.state = Loading{}
	list, err := v.sync.AddExpense(ctx, v.userID, &v.draft)
	if err != nil {
		v.state = Ready{List: ready.List, Err: Message(err)}
		return v.state
	}
	v.state = Ready{List: list}
	return v.state
}

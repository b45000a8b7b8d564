package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
}

type form struct {
	Name string
}

type fakeOps struct {
	items     []item
	fetchErr  error
	createErr error
	updateErr error
	deleteErr error

	created []form
	updated map[int]form
	deleted []int
}

func newFakeOps(items ...item) *fakeOps {
	return &fakeOps{items: items, updated: map[int]form{}}
}

func (f *fakeOps) controller(reporter *Reporter) *Controller[int, item, form] {
	return NewController("item", Ops[int, item, form]{
		Fetch: func(ctx context.Context) ([]item, error) {
			if f.fetchErr != nil {
				return nil, f.fetchErr
			}
			out := make([]item, len(f.items))
			copy(out, f.items)
			return out, nil
		},
		Create: func(ctx context.Context, fm form) error {
			if f.createErr != nil {
				return f.createErr
			}
			f.created = append(f.created, fm)
			f.items = append(f.items, item{ID: len(f.items) + 1, Name: fm.Name})
			return nil
		},
		Update: func(ctx context.Context, id int, fm form) error {
			if f.updateErr != nil {
				return f.updateErr
			}
			f.updated[id] = fm
			return nil
		},
		Delete: func(ctx context.Context, id int) error {
			if f.deleteErr != nil {
				return f.deleteErr
			}
			f.deleted = append(f.deleted, id)
			remaining := f.items[:0]
			for _, it := range f.items {
				if it.ID != id {
					remaining = append(remaining, it)
				}
			}
			f.items = remaining
			return nil
		},
		Draft: func(it item) form { return form{Name: it.Name} },
		IDOf:  func(it item) int { return it.ID },
	}, reporter)
}

func TestControllerSubmitCreatesWithoutEditingID(t *testing.T) {
	ops := newFakeOps()
	c := ops.controller(nil)

	c.SetForm(form{Name: "new"})
	require.NoError(t, c.Submit(context.Background()))

	require.Len(t, ops.created, 1)
	require.Empty(t, ops.updated)
	require.Equal(t, form{}, c.Form())
	require.Nil(t, c.EditingID())
	require.Len(t, c.Items(), 1)
}

func TestControllerSubmitUpdatesWhileEditing(t *testing.T) {
	ops := newFakeOps(item{ID: 7, Name: "old"})
	c := ops.controller(nil)
	require.NoError(t, c.FetchAll(context.Background()))

	c.BeginEdit(c.Items()[0])
	require.NotNil(t, c.EditingID())
	require.Equal(t, 7, *c.EditingID())
	require.Equal(t, form{Name: "old"}, c.Form())

	c.SetForm(form{Name: "renamed"})
	require.NoError(t, c.Submit(context.Background()))

	require.Empty(t, ops.created)
	require.Equal(t, form{Name: "renamed"}, ops.updated[7])
	require.Nil(t, c.EditingID())
	require.Equal(t, form{}, c.Form())
}

func TestControllerSubmitFailureKeepsFormAndEditingID(t *testing.T) {
	ops := newFakeOps(item{ID: 1, Name: "a"})
	c := ops.controller(nil)
	require.NoError(t, c.FetchAll(context.Background()))

	c.BeginEdit(c.Items()[0])
	c.SetForm(form{Name: "edited"})
	ops.updateErr = errors.New("boom")

	require.Error(t, c.Submit(context.Background()))
	require.Equal(t, form{Name: "edited"}, c.Form())
	require.NotNil(t, c.EditingID())
	require.Equal(t, 1, *c.EditingID())
}

func TestControllerFetchFailureKeepsCache(t *testing.T) {
	ops := newFakeOps(item{ID: 1, Name: "a"}, item{ID: 2, Name: "b"})
	c := ops.controller(nil)
	require.NoError(t, c.FetchAll(context.Background()))
	require.Len(t, c.Items(), 2)

	ops.fetchErr = errors.New("network down")
	require.Error(t, c.FetchAll(context.Background()))
	require.Len(t, c.Items(), 2)
}

func TestControllerDeleteRemovesAndReloads(t *testing.T) {
	ops := newFakeOps(item{ID: 1, Name: "a"}, item{ID: 2, Name: "b"})
	c := ops.controller(nil)
	require.NoError(t, c.FetchAll(context.Background()))

	require.NoError(t, c.Delete(context.Background(), 1))
	require.Equal(t, []int{1}, ops.deleted)
	require.Len(t, c.Items(), 1)
	require.Equal(t, 2, c.Items()[0].ID)
}

func TestControllerReportsResults(t *testing.T) {
	ops := newFakeOps()
	reporter := NewReporter(8)
	c := ops.controller(reporter)

	require.NoError(t, c.Submit(context.Background()))

	results := reporter.Results()
	require.Len(t, results, 2)
	require.Equal(t, OpCreate, results[0].Op)
	require.NoError(t, results[0].Err)
	require.Equal(t, OpFetch, results[1].Op)

	ops.createErr = errors.New("rejected")
	require.Error(t, c.Submit(context.Background()))

	last, ok := reporter.Last()
	require.True(t, ok)
	require.Equal(t, OpCreate, last.Op)
	require.Error(t, last.Err)
}

func TestControllerCancelEditResetsForm(t *testing.T) {
	ops := newFakeOps(item{ID: 3, Name: "x"})
	c := ops.controller(nil)
	require.NoError(t, c.FetchAll(context.Background()))

	c.BeginEdit(c.Items()[0])
	c.CancelEdit()

	require.Nil(t, c.EditingID())
	require.Equal(t, form{}, c.Form())
}

func TestReporterBoundsBuffer(t *testing.T) {
	r := NewReporter(3)
	for i := 0; i < 10; i++ {
		r.Report(Result{Op: OpFetch, Entity: "item"})
	}
	require.Len(t, r.Results(), 3)
}

package linked_list_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"github.com/dmgrit/linked-list"
	"github.com/dmgrit/linked-list/mocks"
)

func allocateNew() (*linked_list.Node[int], error) {
	return new(linked_list.Node[int]), nil
}

func TestClearReleasesEveryNodeOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	allocator := mocks.NewMockAllocator[int](ctrl)
	allocator.EXPECT().Allocate().DoAndReturn(allocateNew).Times(3)
	allocator.EXPECT().Deallocate(gomock.Any()).Times(3)

	l := linked_list.New(linked_list.WithAllocator[int](allocator))
	require.NoError(t, l.PushBack(1))
	require.NoError(t, l.PushBack(2))
	require.NoError(t, l.PushFront(0))

	l.Clear()
	l.Clear()
	assert.True(t, l.Empty())
}

func TestRemovalReleasesTheRemovedNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	allocator := mocks.NewMockAllocator[int](ctrl)

	nodes := []*linked_list.Node[int]{new(linked_list.Node[int]), new(linked_list.Node[int]), new(linked_list.Node[int])}
	gomock.InOrder(
		allocator.EXPECT().Allocate().Return(nodes[0], nil),
		allocator.EXPECT().Allocate().Return(nodes[1], nil),
		allocator.EXPECT().Allocate().Return(nodes[2], nil),
		allocator.EXPECT().Deallocate(nodes[1]),
		allocator.EXPECT().Deallocate(nodes[0]),
		allocator.EXPECT().Deallocate(nodes[2]),
	)

	l := linked_list.New(linked_list.WithAllocator[int](allocator))
	require.NoError(t, l.PushBack(1))
	require.NoError(t, l.PushBack(2))
	require.NoError(t, l.PushBack(3))

	_, err := l.Erase(iteratorAt(t, l, 1))
	require.NoError(t, err)
	_, err = l.PopFront()
	require.NoError(t, err)
	_, err = l.PopBack()
	require.NoError(t, err)
}

func TestAllocationFailureLeavesListUnchanged(t *testing.T) {
	errOutOfMemory := errors.New("out of memory")

	testCases := []struct {
		name string
		call func(l *linked_list.List[int]) error
	}{
		{name: "PushBack", call: func(l *linked_list.List[int]) error { return l.PushBack(4) }},
		{name: "PushFront", call: func(l *linked_list.List[int]) error { return l.PushFront(4) }},
		{name: "Insert", call: func(l *linked_list.List[int]) error {
			_, err := l.Insert(l.Begin(), 4)
			return err
		}},
		{name: "Assign", call: func(l *linked_list.List[int]) error { return l.Assign(4, 5, 6, 7) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			allocator := mocks.NewMockAllocator[int](ctrl)
			allocator.EXPECT().Allocate().DoAndReturn(allocateNew).Times(3)
			l := linked_list.New(linked_list.WithAllocator[int](allocator))
			require.NoError(t, l.Assign(1, 2, 3))

			allocator.EXPECT().Allocate().Return(nil, errOutOfMemory)
			err := tc.call(l)
			assert.ErrorIs(t, err, errOutOfMemory)
			assert.Equal(t, []int{1, 2, 3}, l.Values())
			assert.Equal(t, 3, l.Len())
		})
	}
}

func TestBoundedAllocator(t *testing.T) {
	allocator, err := linked_list.NewBoundedAllocator[int](2, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, allocator.Capacity())

	l := linked_list.New(linked_list.WithAllocator[int](allocator))
	require.NoError(t, l.PushBack(1))
	require.NoError(t, l.PushBack(2))
	assert.Equal(t, 2, allocator.InUse())
	assert.Equal(t, 0, allocator.Available())

	err = l.PushBack(3)
	var allocErr *linked_list.AllocationFailureError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, 2, allocErr.Capacity)
	assert.ErrorIs(t, err, linked_list.ErrCapacityExhausted)
	assert.Equal(t, []int{1, 2}, l.Values())

	_, err = l.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, allocator.InUse())
	require.NoError(t, l.PushBack(3))
	assert.Equal(t, []int{2, 3}, l.Values())

	l.Clear()
	assert.Equal(t, 0, allocator.InUse())
	assert.Equal(t, 2, allocator.Available())
}

func TestBoundedAllocatorInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := linked_list.NewBoundedAllocator[int](capacity, nil)
		assert.ErrorIs(t, err, linked_list.ErrInvalidCapacity)
	}
}

func TestBulkAllocationFailureReleasesPartialWork(t *testing.T) {
	allocator, err := linked_list.NewBoundedAllocator[int](2, nil)
	require.NoError(t, err)

	_, err = linked_list.NewFilled(3, 1, linked_list.WithAllocator[int](allocator))
	assert.ErrorIs(t, err, linked_list.ErrCapacityExhausted)
	assert.Equal(t, 0, allocator.InUse())

	dst := linked_list.New(linked_list.WithAllocator[int](allocator))
	require.NoError(t, dst.PushBack(9))
	src := newList(t, 1, 2)
	err = dst.CopyFrom(src)
	assert.ErrorIs(t, err, linked_list.ErrCapacityExhausted)
	assert.Equal(t, []int{9}, dst.Values())
	assert.Equal(t, 1, allocator.InUse())

	_, err = linked_list.NewCopy(src, linked_list.WithAllocator[int](allocator))
	assert.ErrorIs(t, err, linked_list.ErrCapacityExhausted)
	assert.Equal(t, 1, allocator.InUse())
}

func TestBoundedAllocatorLogsRejection(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	allocator, err := linked_list.NewBoundedAllocator[string](1, logger)
	require.NoError(t, err)

	l := linked_list.New(linked_list.WithAllocator[string](allocator))
	require.NoError(t, l.PushBack("a"))
	require.Error(t, l.PushBack("b"))
	assert.Contains(t, buf.String(), "node allocation rejected")
	assert.Contains(t, buf.String(), "capacity=1")
}

func TestBoundedAllocatorSharedAcrossGoroutines(t *testing.T) {
	const (
		numLists    = 4
		perList     = 25
		maxCapacity = numLists * perList
	)
	allocator, err := linked_list.NewBoundedAllocator[int](maxCapacity, nil)
	require.NoError(t, err)

	lists := make([]*linked_list.List[int], numLists)
	var g errgroup.Group
	for i := range lists {
		lists[i] = linked_list.New(linked_list.WithAllocator[int](allocator))
		l := lists[i]
		g.Go(func() error {
			for v := 0; v < perList; v++ {
				if err := l.PushBack(v); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, maxCapacity, allocator.InUse())
	for _, l := range lists {
		assert.Equal(t, perList, l.Len())
	}
	assert.ErrorIs(t, lists[0].PushBack(-1), linked_list.ErrCapacityExhausted)

	var clearGroup errgroup.Group
	for _, l := range lists {
		clearGroup.Go(func() error {
			l.Clear()
			return nil
		})
	}
	require.NoError(t, clearGroup.Wait())
	assert.Equal(t, 0, allocator.InUse())
}

func TestPoolAllocator(t *testing.T) {
	allocator := linked_list.NewPoolAllocator[int]()
	l := linked_list.New(linked_list.WithAllocator[int](allocator))

	for round := 0; round < 3; round++ {
		for v := 0; v < 10; v++ {
			require.NoError(t, l.PushBack(v))
		}
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, l.Values())
		for v := 0; v < 5; v++ {
			_, err := l.PopFront()
			require.NoError(t, err)
		}
		l.Clear()
	}

	var zero linked_list.PoolAllocator[int]
	n, err := zero.Allocate()
	require.NoError(t, err)
	assert.NotNil(t, n)
}

func TestHeapAllocator(t *testing.T) {
	var allocator linked_list.HeapAllocator[int]
	first, err := allocator.Allocate()
	require.NoError(t, err)
	second, err := allocator.Allocate()
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	allocator.Deallocate(first)
	allocator.Deallocate(nil)
}

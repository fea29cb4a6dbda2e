package firm_test

import (
	"testing"

	"github.com/davidroman0O/firm-inout"
)

type Entry struct {
	Name string
}

func TestSignalBasics(t *testing.T) {
	// Create a signal with initial value
	count := firm.NewSignal(0)

	if count.Get() != 0 {
		t.Errorf("Expected initial value to be 0, got %d", count.Get())
	}

	count.Set(5)
	if count.Get() != 5 {
		t.Errorf("Expected value after Set to be 5, got %d", count.Get())
	}

	count.Update(func(current int) int {
		return current + 10
	})
	if count.Get() != 15 {
		t.Errorf("Expected value after Update to be 15, got %d", count.Get())
	}
}

func TestSignalSubscription(t *testing.T) {
	text := firm.NewSignal("hello")

	updates := []string{}
	unsubscribe := text.Subscribe(func(newValue string) {
		updates = append(updates, newValue)
	})

	text.Set("world")
	text.Set("firm")

	if len(updates) != 2 || updates[0] != "world" || updates[1] != "firm" {
		t.Errorf("Expected updates to be [world, firm], got %v", updates)
	}

	unsubscribe()
	text.Set("after unsubscribe")

	if len(updates) != 2 {
		t.Errorf("Expected 2 updates after unsubscribe, got %d", len(updates))
	}
}

func TestUnsubscribeRemovesOnlyItsListener(t *testing.T) {
	counter := firm.NewSignal(0)

	var first, second int
	// Identical closures must still be told apart
	unsubscribeFirst := counter.Subscribe(func(int) { first++ })
	counter.Subscribe(func(int) { second++ })

	unsubscribeFirst()
	counter.Set(1)

	if first != 0 || second != 1 {
		t.Errorf("Expected only the second listener to run, got first=%d second=%d", first, second)
	}
	if counter.Listeners() != 1 {
		t.Errorf("Expected 1 listener left, got %d", counter.Listeners())
	}
}

func TestCustomEqualityFunction(t *testing.T) {
	person := firm.NewSignal(map[string]string{"name": "John"})

	// Only the name field counts
	person.SetEqualityFn(func(a, b map[string]string) bool {
		return a["name"] == b["name"]
	})

	updateCount := 0
	person.Subscribe(func(map[string]string) {
		updateCount++
	})

	person.Set(map[string]string{"name": "John", "age": "30"})
	if updateCount != 0 {
		t.Errorf("Expected no update due to custom equality, got %d updates", updateCount)
	}

	person.Set(map[string]string{"name": "Jane"})
	if updateCount != 1 {
		t.Errorf("Expected 1 update after changing name, got %d", updateCount)
	}
}

func TestDefaultEqualitySkipsDeepEqualValues(t *testing.T) {
	entries := firm.NewSignal([]Entry{{Name: "1"}})

	updateCount := 0
	entries.Subscribe(func([]Entry) { updateCount++ })

	entries.Set([]Entry{{Name: "1"}})
	if updateCount != 0 {
		t.Errorf("Expected deep-equal Set to be ignored, got %d updates", updateCount)
	}

	entries.SetEqualityFn(firm.NeverEqual[[]Entry])
	entries.Set([]Entry{{Name: "1"}})
	if updateCount != 1 {
		t.Errorf("Expected NeverEqual to notify on every Set, got %d updates", updateCount)
	}
}

func TestRoot(t *testing.T) {
	disposeCalled := false
	cleanupCalled := false

	dispose := firm.Root(func(owner *firm.Owner) firm.CleanUp {
		counter := firm.NewSignal(0)

		owner.OnCleanup(func() {
			disposeCalled = true
		})

		counter.Set(1)
		if counter.Get() != 1 {
			t.Errorf("Expected signal value to be 1, got %d", counter.Get())
		}

		return func() {
			cleanupCalled = true
		}
	})

	if disposeCalled || cleanupCalled {
		t.Errorf("Cleanup ran before dispose")
	}

	dispose()

	if !disposeCalled {
		t.Errorf("Dispose function was not called")
	}
	if !cleanupCalled {
		t.Errorf("Returned cleanup was not called")
	}

	// Disposing twice is harmless
	dispose()
}

func TestOwnerDisposesChildrenFirst(t *testing.T) {
	order := []string{}

	var child *firm.Owner
	dispose := firm.Root(func(owner *firm.Owner) firm.CleanUp {
		owner.OnCleanup(func() { order = append(order, "parent") })

		child = owner.Child()
		child.OnCleanup(func() { order = append(order, "child-1") })
		child.OnCleanup(func() { order = append(order, "child-2") })
		return nil
	})

	dispose()

	expected := []string{"child-2", "child-1", "parent"}
	if len(order) != len(expected) {
		t.Fatalf("Expected cleanup order %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Expected cleanup order %v, got %v", expected, order)
			break
		}
	}
	if !child.Disposed() {
		t.Errorf("Expected child to be disposed")
	}
}

func TestOnCleanupAfterDisposeRunsImmediately(t *testing.T) {
	var owner *firm.Owner
	dispose := firm.Root(func(o *firm.Owner) firm.CleanUp {
		owner = o
		return nil
	})
	dispose()

	ran := false
	owner.OnCleanup(func() { ran = true })
	if !ran {
		t.Errorf("Expected cleanup registered on a disposed owner to run immediately")
	}

	if !owner.Child().Disposed() {
		t.Errorf("Expected child of a disposed owner to be disposed")
	}
}

func TestSubscribeOwned(t *testing.T) {
	items := firm.NewSignal([]Entry{})

	received := 0
	dispose := firm.Root(func(owner *firm.Owner) firm.CleanUp {
		items.SubscribeOwned(owner.Child(), func([]Entry) {
			received++
		})
		return nil
	})

	items.Set([]Entry{{Name: "a"}})
	if received != 1 {
		t.Errorf("Expected 1 notification, got %d", received)
	}

	dispose()
	if items.Listeners() != 0 {
		t.Errorf("Expected listener to be removed on dispose, got %d", items.Listeners())
	}

	items.Set([]Entry{{Name: "b"}})
	if received != 1 {
		t.Errorf("Expected no notification after dispose, got %d", received)
	}
}

package stategate_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/stategate"
	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/dsl"
)

// ExampleEngine_Value shows a gated attribute moving through its states.
func ExampleEngine_Value() {
	eng := stategate.New()

	b := dsl.New()
	b.State("pending").Human("Pending Activation").To("active")
	b.State("active").To("suspended", "archived")
	b.State("suspended").To("active", "archived")
	b.State("archived")

	if _, err := eng.Define("User", "status", b.Script()); err != nil {
		log.Fatal(err)
	}

	status, err := eng.Value("User", "status")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(status.Get(), "-", status.Human())

	if err := status.Set("active"); err != nil {
		log.Fatal(err)
	}
	fmt.Println(status.Get(), status.Transitions())

	err = status.Set("pending")
	fmt.Println(errors.Is(err, domain.ErrInvalidTransition), err)

	if err := status.Set("force_pending"); err != nil {
		log.Fatal(err)
	}
	fmt.Println(status.Get())

	// Output:
	// pending - Pending Activation
	// active [suspended archived]
	// true User#status cannot transition from :active to :pending
	// pending
}

// ExampleEngine_Authorize shows a configuration error and an authorization check.
func ExampleEngine_Authorize() {
	eng := stategate.New()

	_, err := eng.Define("Order", "state", dsl.New().State("draft").To("placed").Script())
	fmt.Println(err)

	b := dsl.New()
	b.State("draft")
	b.State("placed")
	b.State("shipped")
	b.MakeSequential("one_way")
	if _, err := eng.Define("Order", "state", b.Script()); err != nil {
		log.Fatal(err)
	}

	fmt.Println(eng.Authorize("Order", "state", "draft", "placed"))
	fmt.Println(eng.Authorize("Order", "state", "placed", "draft"))

	// Output:
	// Order#state must define more than one state
	// <nil>
	// Order#state cannot transition from :placed to :draft
}

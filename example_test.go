package idpool_test

import (
	"context"
	"fmt"
	"log"

	"github.com/idpool/idpool"
)

func ExamplePooledSource() {
	var generated int
	counter := func() (string, error) {
		generated++
		return fmt.Sprintf("id-%03d", generated), nil
	}

	cfg := idpool.Config{
		Capacity: 2,
		Policy:   idpool.RefillSynchronous,
	}

	source, err := idpool.New(cfg, counter)
	if err != nil {
		log.Fatal(err)
	}
	defer source.Close(context.Background())

	fmt.Println("pre-generated:", generated)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		id, err := source.Next()
		if err != nil {
			log.Fatal(err)
		}
		seen[id] = true
	}

	// the third call exhausted the pool and regenerated a whole batch
	fmt.Println("served:", len(seen))
	fmt.Println("generated:", generated)
	// Output:
	// pre-generated: 2
	// served: 3
	// generated: 4
}

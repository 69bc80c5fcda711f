package log_test

import (
	"fmt"

	"github.com/graph-gophers/graphql-import/log"
)

func ExampleTracerFunc() {
	tracer := log.TracerFunc(func(event log.Event, sourceKey, detail string) {
		fmt.Printf("%s %s %s\n", event, sourceKey, detail)
	})

	tracer.Trace(log.VisitSource, "a.graphql", `import B from "b.graphql"`)

	// Output:
	// visit_source a.graphql import B from "b.graphql"
}

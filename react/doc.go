// Package react implements the reason-act control loop: rounds of model
// completion, tag extraction, and tool dispatch, with observations fed back
// into the conversation until the model emits a response tag or the round
// budget runs out.
//
// A minimal session:
//
//	engine, err := react.New(provider,
//	    react.WithModel("gpt-4o-mini"),
//	    react.WithTools(mathtools.NewSumTool(), mathtools.NewMultiplyTool()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	answer, err := engine.Run(ctx, "what is (1234+5678)*5?")
//
// Tools are optional: with an empty catalog (or a zero round budget) the
// engine makes exactly one completion call and returns its raw output.
package react

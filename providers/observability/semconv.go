package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the engine.

// --- Model Call Attributes ---

const (
	// AttrModel is the model identifier sent with the completion request
	AttrModel = "model.id"

	// AttrModelMessagesCount is the number of messages in the request
	AttrModelMessagesCount = "model.messages_count"

	// AttrModelResponseLength is the length of the raw response text
	AttrModelResponseLength = "model.response_length"
)

// --- Reasoning Loop Attributes ---

const (
	// AttrRound is the zero-based index of the current round
	AttrRound = "react.round"

	// AttrMaxRounds is the configured round budget for the session
	AttrMaxRounds = "react.max_rounds"

	// AttrQuestion is the user question that started the session
	AttrQuestion = "react.question"

	// AttrThought is a thought segment extracted from model output
	AttrThought = "react.thought"

	// AttrResponse is the final response text returned to the caller
	AttrResponse = "react.response"

	// AttrObservations is the serialized observation map for a round
	AttrObservations = "react.observations"
)

// --- Tool Execution Attributes ---

const (
	// AttrToolName is the name of the tool being executed
	AttrToolName = "tool.name"

	// AttrToolCallID is the caller-supplied correlation id of a tool call
	AttrToolCallID = "tool.call_id"

	// AttrToolInput is the tool input (serialized)
	AttrToolInput = "tool.input"

	// AttrToolOutput is the tool output (serialized)
	AttrToolOutput = "tool.output"

	// AttrToolDuration is the execution duration
	AttrToolDuration = "tool.duration"

	// AttrToolError is the error message if tool dispatch failed
	AttrToolError = "tool.error"

	// AttrToolsCount is the number of tools registered for the session
	AttrToolsCount = "tool.count"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanSession is the span covering one full Run of the engine
	SpanSession = "react.session"

	// SpanRound is the span covering one round (model call + tool dispatch)
	SpanRound = "react.round"

	// SpanModelComplete is the span covering a single model call
	SpanModelComplete = "model.complete"

	// SpanToolExecution is the span name for tool executions
	SpanToolExecution = "tool.execution"
)

// --- Event Names ---

const (
	// EventRoundStart marks the top of a round, before the model call
	EventRoundStart = "react.round.start"

	// EventThought records a thought segment surfaced from model output
	EventThought = "react.thought"

	// EventToolCallSkipped records a tool call dropped from the round
	// because it failed parsing, validation, or execution
	EventToolCallSkipped = "react.tool_call.skipped"

	// EventObservation records the observation message appended for a round
	EventObservation = "react.observation"

	// EventBudgetExhausted marks the fallback completion after the round
	// budget ran out
	EventBudgetExhausted = "react.budget_exhausted"

	// EventToolExecutionStart marks the start of a tool execution
	EventToolExecutionStart = "tool.execution.start"

	// EventToolExecutionEnd marks the end of a tool execution
	EventToolExecutionEnd = "tool.execution.end"
)

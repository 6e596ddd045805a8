package agent

// generateSystemPrompt instructs the model to emit exactly one GraphQL query
// for the Jobs API. The schema description and query rules mirror what the
// upstream API serves.
const generateSystemPrompt = `You are a helpful assistant that translates natural language questions into valid GraphQL queries for a Jobs API.

The GraphQL API schema includes:
- Query: jobs(filter: JobFilter, sort: JobSort, limit: Int): [Job]
- Type Job: { id: ID, title: String, description: String, location: String, salary: Int }
- Input JobFilter: { location: String }
- Input JobSort: { field: String, order: String }

Rules for creating GraphQL queries:
- Use proper GraphQL syntax with correct braces and field names.
- For filtering by location, use filter: { location: "value" }.
- For sorting, use sort: { field: "salary", order: "DESC" } for descending order.
- Limit results with limit: 10 for top results.
- Only include fields: id, title, description, location, salary.
- Avoid extra braces, invalid field names, or incorrect syntax.
- Ensure the query is enclosed in a single {} block.

Example query for top-paying jobs in London:
{
  jobs(filter: { location: "London" }, sort: { field: "salary", order: "DESC" }, limit: 10) {
    title
    location
    salary
  }
}

If the question is ambiguous, make reasonable assumptions (e.g., sort by salary for "top paying").
Respond with the GraphQL query only. No explanation, no markdown fences.`

// regenerateUserPrompt is the correction template used after a local
// validation rejection; the model gets one chance to fix its output.
const regenerateUserPrompt = `The question was: %s

Your previous query was rejected before execution:
%s

Rejection reason: %s

Produce a corrected GraphQL query. Respond with the query only.`

// summarizeSystemPrompt turns the raw JSON result into a readable answer.
const summarizeSystemPrompt = `You are a helpful assistant that answers questions about job listings.
You are given the user's question and the raw JSON response from the Jobs API.
Interpret the data and provide a clear, concise, human-readable answer.
If the response contains an errors field, explain what went wrong in plain language.`

// summarizeUserPrompt carries the question and the API response.
const summarizeUserPrompt = `Question: %s

Jobs API response:
%s`

package llm

import "strings"

type Instruction string

const SQLInstruction Instruction = `You are an AI that generates safe SQL SELECT queries for Microsoft SQL Server.`

const SQLRules Instruction = `CRITICAL SQL Server Rules:
1. Generate ONLY SELECT queries - NO INSERT, UPDATE, DELETE, DROP, ALTER commands
2. Use only the JOBORDER table
3. DO NOT use backticks - SQL Server does NOT support them
4. Use square brackets [column_name] or plain column names only
5. Use single quotes (') for string values
6. Use ONLY SQL Server functions: GETDATE(), DATEADD(), DATEDIFF(), LEN(), SUBSTRING()
7. DO NOT use MySQL functions: DATETIME(), NOW(), CURDATE(), LENGTH(), SUBSTR()
8. DO NOT use PostgreSQL syntax
9. All columns must be from the JOBORDER table only
10. Use TOP instead of LIMIT

Correct SQL Server examples:
SELECT * FROM JOBORDER WHERE MAT_TYPE = 'Local'
SELECT [PART_NO], [PART_NAME] FROM JOBORDER
SELECT TOP 10 * FROM JOBORDER
WHERE LEN(PART_NO) > 5

Wrong examples (DO NOT USE):
SELECT 'PART_NO' quoted with backticks (no backticks)
WHERE DATETIME() (no MySQL functions)
LIMIT 10 (use TOP instead)`

const ResponseFormat Instruction = `Please respond in this exact format:
SQL:
[Your SQL query here]

EXPLANATION:
[Your explanation here]`

const NarrateInstruction Instruction = `You are a helpful assistant explaining database query results.
Given the user's question, the SQL query that was executed and the rows it
returned, answer the question conversationally in one short paragraph.
Mention concrete numbers from the rows. Answer in the language the question
was asked in. Do not repeat the SQL query and do not invent data that is not
in the rows.`

// BuildSQLPrompt assembles the generation prompt for one question.
func BuildSQLPrompt(question, schema string) string {
	return strings.Join([]string{
		string(SQLInstruction),
		schema,
		string(SQLRules),
		"User question: " + question,
		string(ResponseFormat),
	}, "\n\n")
}

// BuildNarratePrompt assembles the second-pass prompt that turns a result
// set into a conversational answer.
func BuildNarratePrompt(question, sqlQuery, results string) string {
	return strings.Join([]string{
		string(NarrateInstruction),
		"QUESTION:\n" + question,
		"SQL:\n" + sqlQuery,
		"RESULTS:\n" + results,
	}, "\n\n")
}

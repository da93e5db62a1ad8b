package planner

// schedulingCheckPrompt asks for a bare yes/no intent decision
const schedulingCheckPrompt = `Analyze the message and respond with ONLY "yes" or "no": Is the user trying to schedule an event or task?`

// extractEventPrompt asks for the calendar fields as bare JSON. Dates use the
// compact form consumed directly by the Google Calendar render URL.
const extractEventPrompt = `Extract the event details from the message and respond with ONLY a JSON object of this exact shape, no prose and no markdown:
{"title": "", "details": "", "location": "", "startDate": "YYYYMMDDTHHMMSS", "endDate": "YYYYMMDDTHHMMSS"}
Leave a field empty if the message does not mention it.`

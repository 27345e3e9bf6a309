package report

// WritingStandard applies to every report kind and is injected into each
// generation request alongside the kind-specific narrative guideline.
const WritingStandard = `Police Report Writing Standard:
All reports must include the incident number, the report time (when the
officer took the report, not dictation time), the reporting officer's
information, and the occurrence time (when the incident took place).
Write in third person. Use the 24-hour clock without colons for times.
Start the narrative with date, time, and author, for example:
"On January 1, 2022, at 0800 hours, Constable Jeremy RIABOV #786...".
End with "End of Report", badge number, and date and time of completion.
Officers: rank, first name, LAST NAME, and badge number on first mention;
rank and LAST NAME afterwards. Involved persons: first name and LAST NAME
on first mention; LAST NAME only afterwards. Last names are always
capitalized (John SMITH). Do not include tombstone information (DOB) in
the body. Do not use radio codes, acronyms, or short forms except CPIC,
DNA, and CFRO; write out a full name followed by the acronym in
parentheses on first use. Use proper address order:
[Street Number] [Street Name] [Street Direction], [Unit/Apartment Number].
Preserve all relevant facts and mentioned times; do not omit details.`

// CrownBriefGuideline constrains the Crown Brief narrative to a short
// summary for prosecution intake.
const CrownBriefGuideline = `Write a single concise summary sentence of
roughly ten words capturing the essential allegation.`

// GeneralOccurrenceGuideline is the 7-point structure for the General
// Occurrence narrative.
const GeneralOccurrenceGuideline = `General Occurrence Report Narrative Guidelines:
1. Begin with a brief overview of the incident.
2. Provide a detailed account of the officer's actions and observations.
3. Include information about all parties involved (complainants, suspects, witnesses).
4. Describe any injuries, damages, or losses reported or observed.
5. Document any immediate actions taken (e.g., arrests, seizures, referrals).
6. Note any follow-up actions required or recommendations made.
7. Ensure all relevant details are included for potential future reference or investigation.`

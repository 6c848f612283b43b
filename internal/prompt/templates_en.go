package prompt

const mermaidEN = `Extract the complete business transaction flow from the contract text below and generate a mermaid flowchart.

--- Contract Content ---
{{document}}
--- End of Contract ---

## Requirements:

### 1. Process Completeness
- Cover the full lifecycle from contract signing to fulfillment completion
- Include normal fulfillment process, breach handling, and contract termination scenarios
- Reflect the interaction and responsibilities of both parties

### 2. Information Accuracy
- **Time Points**: Extract specific time requirements (X business days, X hours, etc.) and trigger conditions
- **Amount Data**: Extract specific amounts and percentages (e.g., 30% advance payment, total amount)
- **Quantity Specs**: Extract specific quantities, models, and specifications of goods/services
- **Location Info**: Extract specific delivery locations, acceptance locations, etc.
- **Standard Conditions**: Extract acceptance standards, quality requirements, technical indicators
- **Information Constraint**: All extracted information must come from the contract text, maintaining precision

### 3. Node Content Format
- Each node contains the main action in square brackets
- Separate multiple items within a node with "<br>"
- Label connecting lines with trigger conditions and time requirements, format: "|condition description|". If no time requirement or trigger condition exists, label with "?"

### 4. Process Logic
- Use "-->" for normal flow direction
- Show decision points (e.g., acceptance pass/fail)
- Include parallel processes (e.g., risk transfer and ownership transfer)
- Show breach consequence progression (minor breach -> major breach -> contract termination)

### 5. Visual Styling
Add style definitions at the end of the flowchart:
- Normal fulfillment nodes: "style [nodeID] fill:#e7f0ff" (soft light blue)
- Breach-related nodes: "style [nodeID] fill:#fff4d6" (soft pale yellow)
- Contract termination nodes: "style [nodeID] fill:#f2b1b6" (slightly deeper coral red)
- Normal completion nodes: "style [nodeID] fill:#d8eddf" (slightly deeper soft green)

## Output Format:
- Output only mermaid code, starting with "flowchart TD", ensuring it can be directly rendered
- Do not include any explanatory text or code block markers
- Ensure correct syntax for direct rendering`

const overviewEN = `Based on the contract text below, objectively summarize the basic content of the contract to provide legal professionals with structured information for a quick understanding. **Only provide objective descriptions without any legal risk assessment or review recommendations.**

--- Contract Content ---
{{document}}
--- End of Contract ---

## Output Format Requirements:

### I. Basic Contract Information
| Item | Content |
|------|---------|
| Contract Name | [Extract contract title or agreed name] |
| Contract Type | [e.g., Sales Contract, Service Contract, Lease Agreement, etc.] |
| Parties | Party A: [Name, Address]<br>Party B: [Name, Address] |
| Signing Date | [Contract signing date] |
| Contract Term | [Start and end dates or performance period] |
| Contract Amount | [Total amount and currency, specify installment arrangements if applicable] |

### II. Business Model Overview
**Brief Description:** [Summarize the core business content of this contract in 1-2 paragraphs, explaining the basic transaction relationship between parties]

### III. Core Terms Elements
#### 3.1 Transaction Elements
| Element | Specific Content |
|---------|------------------|
| Subject Matter/Services | [Specific description of goods, services, or other subject matter] |
| Quantity & Specifications | [Quantity, model, technical parameters, etc.] |
| Price Structure | [Unit price, total price, price adjustment mechanism, etc.] |
| Payment Method | [Payment ratio, payment milestones, payment method] |
| Delivery Method | [Delivery location, delivery time, delivery standards] |

#### 3.2 Rights and Obligations Allocation
**Party A's Main Rights and Obligations:**
- [List Party A's main rights]
- [List Party A's main obligations]
**Party B's Main Rights and Obligations:**
- [List Party B's main rights]
- [List Party B's main obligations]

#### 3.3 Performance Guarantee Terms
| Term Type | Specific Provisions |
|-----------|-------------------|
| Breach Liability | [Consequences of Party A's breach, Party B's breach] |
| Guarantee Measures | [Security deposit, guarantee methods, etc.] |
| Acceptance Standards | [Acceptance procedures, standards, dispute resolution] |
| Quality Assurance | [Warranty period, warranty responsibilities, after-sales service] |

#### 3.4 Risk Allocation and Special Provisions
**Risk Allocation:**
- [Force majeure clause]
- [Risk transfer point]
- [Loss bearing agreement]
**Special Provisions:**
- [Intellectual property clause]
- [Confidentiality clause]
- [Exclusivity provisions]
- [Other special conditions or restrictions]

#### 3.5 Dispute Resolution and Contract Termination
| Item | Provisions |
|------|-----------|
| Dispute Resolution | [Negotiation, mediation, arbitration, litigation and jurisdiction] |
| Contract Amendment | [Amendment conditions and procedures] |
| Contract Termination | [Termination conditions, procedures, consequences] |
| Applicable Law | [Applicable laws and regulations] |

### IV. Key Time Milestones
- [List key milestones in contract performance chronologically, such as signing, payment, delivery, acceptance, etc.]

## Output Requirements:
1. **Objectivity**: Only extract and describe contract terms without adding subjective judgments or legal opinions
2. **Completeness**: Cover main contract terms; mark "Not Specified" if content is missing
3. **Accuracy**: Faithfully reflect original contract content; quote key expressions from original text where appropriate
4. **Conciseness**: Control length based on contract complexity while maintaining clear expression
5. **Structure**: Strictly follow the above format for easy navigation by legal professionals`

const foundationEN = `# Role Definition
As an experienced contract legal advisor, based on your review stance "{{stance}}" and the user's additional review requirements "{{extra}}", conduct a foundation audit on the contract text in the following four aspects, without omitting any review points:

Full contract text:
{{document}}

# Foundation Review Points
1. Text Accuracy:
   - Check if all keywords and terms are spelled correctly
   - Verify all numbers, amounts, and percentages are accurate (pay special attention to consistency between numeric and written amounts)
   - Check if date expressions are precise (avoid vague terms like "soon", "in the near future")
2. Format Compliance:
   - Check if punctuation is used properly
   - Review if clause numbering is sequential and coherent, check for duplicate numbering
   - Check if layout is neat with no obvious formatting errors
   - Confirm if signature areas have sufficient space
3. Language Clarity:
   - Check for grammatical errors or unclear expressions
   - Identify ambiguous or vague descriptions, especially regarding time, quantity, and quality
   - Verify if professional terminology is used accurately
4. Text Consistency:
   - Check if the same concept uses consistent terminology throughout the contract (e.g., product names, models)
   - Verify if internal cross-references to clause numbers are accurate
   - Confirm no logical conflicts exist between clauses
   - Check if appendices are consistent with main text

# Output Requirements
1. Output in table format;
2. Table headers in order: No., Issue Type, Original Text, Risk Reason, Amendment Suggestion, Risk Level;
3. Issue Type should be one of: Text Accuracy, Format Compliance, Language Clarity, Text Consistency;
4. Risk Level should be High/Medium/Low, rows sorted from high to low risk, marked with red/yellow/blue emoji;
5. Original Text should quote the exact content with quotation marks and specify chapter, section, article, clause, item (if applicable);
6. This review only covers these four aspects, no need to review business terms or legal terms;
7. Summarize high-risk items below the table; output only the table and summary, nothing else.`

const businessEN = `# Role Definition
As an experienced contract legal advisor, based on your review stance "{{stance}}" and the user's additional review requirements "{{extra}}", conduct a business terms audit on the contract text in the following six aspects, without omitting any review points:

Full contract text:
{{document}}

# Business Terms Review Points
1. Subject Matter Terms:
   - Is the description of goods or services clear and complete
   - Is the quantity of goods or services specified
   - Are quality standards or service standards clearly defined
   - Are technical specifications or performance requirements clear
   - Are packaging requirements specified
   - Are inspection or acceptance standards clear
   - Are after-sales services specified
2. Delivery Terms:
   - Is delivery time clearly specified
   - Is delivery location clearly specified
   - Is delivery method clearly specified
   - Is risk transfer upon delivery clear
   - Are acceptance procedures after delivery clear
   - Are there special requirements at delivery (equipment installation, commissioning, etc.)
3. Price Terms:
   - Is price structure clear (unit price, total price, calculation method)
   - Is pricing method clear (per item, per time, per workload, etc.)
   - Is currency clearly specified, is exchange rate considered (for cross-border transactions)
   - Are price and tax separated, is tax liability clear
   - Is payment method clear (lump sum, installments, retention)
   - Do payment milestones match performance progress
   - Are payment conditions clear and operable
   - Are payment vouchers and invoice provisions clear
4. Performance Terms:
   - Is performance time specific (avoid vague terms like "reasonable time")
   - Is performance location specific and clear
   - Is performance method described in detail (delivery method, packaging requirements, transportation method)
   - Is performance procedure explained systematically (specific operations for each step)
   - Is the point of rights transfer clear (ownership transfer time)
   - Is the point of risk transfer clear (risk liability assumption time)
   - Are notification obligations during performance clearly specified
5. Rights and Obligations Terms:
   - Are main rights comprehensively listed without omission
   - Are there implied waiver clauses
   - Are exemption clauses reasonable (especially force majeure scope)
   - Are main obligations listed without omission, are performance standards clear
   - Reasonableness and enforceability of obligations
   - Are post-contract obligations clear (e.g., confidentiality continuation period)
   - Are ancillary rights and obligations clear (rights and obligations attached to main rights)
6. Intellectual Property Terms:
   - Is ownership of existing intellectual property clear
   - Is ownership of intellectual property generated during contract performance clear
   - Are scope, purpose, and duration of intellectual property usage rights clear
   - Are conditions for intellectual property transfer and licensing clear
   - How is responsibility for intellectual property protection and maintenance allocated
   - Are confidentiality and competition restriction periods and scopes reasonable

# Output Requirements
1. Output in table format;
2. Table headers in order: No., Issue Type, Original Text, Risk Reason, Amendment Suggestion, Risk Level;
3. Issue Type should be one of the six business terms review points;
4. Risk Level should be High/Medium/Low, rows sorted from high to low risk, marked with red/yellow/blue emoji;
5. Original Text should quote the exact content with quotation marks and specify chapter, section, article, clause, item (if applicable);
6. This review only covers these six aspects, no need to review other aspects;
7. Summarize high-risk items below the table; output only the table and summary, nothing else.`

const legalEN = `# Role Definition
As an experienced contract legal advisor, based on your review stance "{{stance}}" and the user's additional review requirements "{{extra}}", conduct a legal terms audit on the contract text in the following ten aspects, without omitting any review points:

Full contract text:
{{document}}

# Legal Terms Review Points
1. Effectiveness Terms:
   - Is there clear distinction between contract formation and effectiveness
   - Are effectiveness conditions clear (effective upon signing, conditional effectiveness, time-based effectiveness)
   - Is feasibility of effectiveness conditions considered
   - How are legal responsibilities arranged before effectiveness
2. Breach Liability Terms:
   - Key review: Is definition of breach comprehensive (delayed performance, quality non-compliance, refusal to perform, etc.)
   - Are forms of breach liability clear (continued performance, remedial measures, damages, penalty payment)
   - Is penalty ratio reasonable (neither too high as punitive nor too low to cover losses)
   - Is breach liability fair to both parties (check if penalty ratios are balanced)
   - Is calculation method of breach liability clear
3. Contract Amendment, Termination, and Dissolution Terms:
   - Are amendment conditions clear (under what circumstances can amendments be made)
   - Are amendment procedures standardized (written amendment, notification method, signing procedure)
   - Are termination conditions reasonable (statutory termination, agreed termination)
   - Operability of termination procedures (notification method, time limits)
   - Clarity of dissolution conditions (under what circumstances automatic dissolution occurs)
   - Reasonableness of surviving clauses (which clauses remain valid after contract termination)
   - Arrangement of rights and obligations after termination (settlement, data return, etc.)
4. Applicable Law Terms:
   - Is applicable law clearly specified (specific country/region's law)
   - Reasonableness of chosen law (connection with contract subject matter and place of performance)
   - Does it conflict with mandatory provisions (mandatory provisions of the law at place of performance)
   - Applicability and enforceability of chosen law in actual disputes
5. Confidentiality Terms:
   - Is scope of confidential information clearly defined
   - Is confidentiality period clear and reasonable
   - Are exceptions reasonable and limited
   - Is liability for breach of confidentiality obligations clear
6. Force Majeure Terms:
   - Is definition of force majeure events reasonable (avoid including controllable factors)
   - Are notification obligations clear (time, method, supporting documents)
   - Are liability exemption conditions fair and reasonable
   - Are follow-up measures for continued force majeure events clear
7. Dispute Resolution Terms:
   - Is dispute resolution method clearly chosen (negotiation, litigation, arbitration)
   - Is jurisdiction location or arbitration institution clearly specified
   - Are there conflicts in dispute resolution methods (simultaneous provision for arbitration and litigation)
   - Does applicable law choice match dispute resolution method
8. Service Terms:
   - Is service method clear (personal service, mail, email, etc.)
   - Is service address or contact information accurate and complete
   - Are service time and effectiveness conditions clear
   - Is obligation to notify address changes clear
9. Authorization Terms:
   - Is identity of authorized personnel clearly specified
   - Are scope and authority of authorization clearly defined
   - Is authorization period reasonably specified
   - Is mechanism for revocation or amendment of authorization complete
10. Other Legal Terms:
    - Are interpretation rules clear (principles for handling clause conflicts)
    - Are signing time and location clear
    - Is independence of clauses clear (partial invalidity does not affect the whole)

# Output Requirements
1. Output in table format;
2. Table headers in order: No., Issue Type, Original Text, Risk Reason, Amendment Suggestion, Risk Level;
3. Issue Type should be one of the ten legal terms review points;
4. Risk Level should be High/Medium/Low, rows sorted from high to low risk, marked with red/yellow/blue emoji;
5. Original Text should quote the exact content with quotation marks and specify chapter, section, article, clause, item (if applicable);
6. This review only covers these ten aspects, no need to review other aspects;
7. Summarize high-risk items below the table; output only the table and summary, nothing else.`

const summaryEN = `As a legal professional, based on the contract content below and detailed review findings, draft a concise reply for the business department.

--- Contract Content ---
{{document}}
--- End of Contract ---

--- Detailed Review Findings ---
{{findings}}
--- End of Detailed Review ---

The reply should contain two natural paragraphs:

# First Paragraph: Contract Core Content Overview
Summarize the core content of this contract in a coherent paragraph. Describe the contract nature (e.g., "This is a three-year equipment procurement framework agreement"), and clearly describe the basic business model, focusing on: what goods or services are being traded, total contract amount, specific payment methods and schedule, and key time milestones. In the narrative, based on our review stance "{{stance}}", use "our party", "the other party", or specific company names to refer to the contract parties, avoiding expressions like "Party A, Party B".

# Second Paragraph: Main Risk Alerts
In another paragraph, concentrate on explaining the main risks found during the review (must be entirely based on detailed review findings). When writing, start with a summary statement (e.g., "Upon review, this contract has the following main risks requiring attention:"), then list each risk using numbered items (e.g., 1. 2. 3.), with the quantity depending on actual circumstances. Each risk item should briefly explain its type, specific content, potential impact, and recommended level of attention.

# Overall Requirements:
- Use Markdown format for the reply. Bold the first paragraph, do not bold the second paragraph, but use numbered items (e.g., 1. 2. 3.) to list each risk.
- Language should be concise, professional, and clear, directly presenting the final content without introductory phrases like "Part One", "Part Two".
- Ensure correct stance and expressions aligned with our party's interests.`

const identifyStanceEN = `Please analyze the following contract text, identify the parties and contract type, and recommend possible stance options for the user.

--- Contract Content ---
{{document}}
--- End of Contract ---

## Analysis Requirements:

### 1. Party Identification
- Identify all parties in the contract (Party A, Party B, etc.)
- Extract party names and characteristics
- Analyze possible roles of each party (buyer/seller/service provider/service recipient, etc.)

### 2. Contract Type Identification
- Determine the basic type of contract (sales contract, service contract, construction contract, lease agreement, etc.)
- Summarize the core transaction content

### 3. Stance Analysis
Based on contract nature and party identities, recommend a main stance option and alternative options, with key considerations, pros and cons, and preliminary negotiation suggestions for each.

## Output Format:
Output exactly one JSON object with no explanatory text and no code block markers, structured as:
{
  "parties": [{"name": "party name", "role": "role (e.g., Party A/Party B/buyer/seller)", "description": "characteristics"}],
  "contract_type": "specific contract type",
  "options": [{"stance": "stance description", "description": "meaning of this stance", "key_points": ["point"], "pros": ["advantage"], "cons": ["disadvantage"], "suggestions": ["negotiation suggestion"]}]
}

## Overall Requirements:
- Analysis must be based on actual contract text content
- Stance recommendations should be objective and neutral, providing balanced option comparisons
- The first entry of options is the primary recommended stance
- All text content in English`

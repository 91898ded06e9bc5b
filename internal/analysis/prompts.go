package analysis

import (
	"fmt"
	"strings"
)

const extractItemsPrompt = `You are a procurement analyst. Your task is to extract every product line item from the text of a commercial quotation.

INSTRUCTIONS:
1. Read the text carefully. It may be noisy output from an OCR scan.
2. Find every row that contains a product name, quantity, unit of measure, and price. Do NOT invent data that is not in the text.
3. If a field is absent (for example the SKU, quantity, or a price), leave it as null or omit it.
4. Prices and quantities must be pure numbers. Strip currency and unit suffixes such as "RUB", "pcs.", etc.
5. Return ONLY a JSON array. No extra words, explanations, or code fences.

Example JSON object for one line item:
{
  "name": "Product name",
  "sku": "Article or code (if present)",
  "quantity": 10,
  "unit": "pcs",
  "price_per_unit": 1500.50,
  "total_price": 15005.00
}

TEXT TO ANALYZE:
---
%s
---`

const groupItemsPrompt = `You are a data-normalization expert. You are given a JSON array of products quoted by DIFFERENT suppliers.

TASK:
1. Group semantically identical products. "Bearing 6205-2RS" and "Ball bearing art. 6205" are the SAME product.
2. For each group produce a single canonical name.
3. Return ONLY a JSON array where each element is one unique product holding the list of supplier offers it absorbed.

OUTPUT JSON STRUCTURE:
[
  {
    "canonical_name": "Canonical product name 1",
    "offers": [
      { "supplier": "Supplier A", "price_per_unit": 100.00 },
      { "supplier": "Supplier B", "price_per_unit": 105.50 }
    ]
  },
  {
    "canonical_name": "Canonical product name 2",
    "offers": [
      { "supplier": "Supplier A", "price_per_unit": 220.00 }
    ]
  }
]

INPUT DATA (JSON):
---
%s
---`

const insightPrompt = `You are a procurement expert. You are given the results of a commercial-quotation comparison in JSON format.

YOUR TASK:
Write a short (2-3 sentences) but substantial analytical summary for a purchasing manager.

YOU MUST:
1. Name the supplier with the lowest TOTAL across all line items, and state that total.
2. Analyze the rows: is there ADDITIONAL saving available by splitting the purchase between suppliers item by item?
3. If yes, give a concrete example: "For instance, buying [Item 1] from [Supplier A] and [Item 2] from [Supplier B] would reduce total spend."
4. Keep a businesslike but clear tone and address the reader respectfully.

INPUT DATA:

1. The comparison table (JSON):
%s

2. Totals per supplier:
%s

YOUR ANALYTICAL SUMMARY:`

func buildExtractPrompt(text string) string {
	return fmt.Sprintf(extractItemsPrompt, strings.TrimSpace(text))
}

func buildGroupPrompt(itemsJSON string) string {
	return fmt.Sprintf(groupItemsPrompt, itemsJSON)
}

func buildInsightPrompt(tableJSON, totalsJSON string) string {
	return fmt.Sprintf(insightPrompt, tableJSON, totalsJSON)
}

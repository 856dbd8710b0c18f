package menu

// PromptContext is the menu text handed to the order extractor as
// context. It mirrors the printed menu, including the menu/seul rule.
func PromptContext() string {
	return promptContext
}

const promptContext = `=== MENU CHICKEN HOT DREUX ===

NAANS (Wraps):
- Mixte (7,50€ seul / 9,50€ menu)
- Spécial (7,50€ seul / 9,50€ menu)
- Country (7,50€ seul / 9,50€ menu)
- Classico (6,90€ seul / 8,90€ menu)
- Classic (6,90€ seul / 8,90€ menu)
- Curry (6,90€ seul / 8,90€ menu)
- Royal (7,50€ seul / 9,50€ menu)
- Oriental (7,50€ seul / 9,50€ menu)
- RoyalBacon (7,50€ seul / 9,50€ menu)
- DoubleFish (6,50€ seul / 8,50€ menu)

CHICKENBURGERS:
- Légende (7,00€ seul / 9,00€ menu)
- Wafelé (6,50€ seul / 8,50€ menu)
- FiletBurger (5,90€ seul / 7,90€ menu)
- BigBacon (6,50€ seul / 8,50€ menu)
- BigChicken (6,50€ seul / 8,50€ menu)
- FiletBBQ (6,50€ seul / 8,50€ menu)

CLASSIQUEBURGERS:
- Fish (5,30€ seul / 7,30€ menu)
- Cheese (3,50€ seul / 5,50€ menu)
- BigCheese (4,90€ seul / 6,90€ menu)

EXTRAS:
- Tenders x3 (3,50€) / x7 (6,90€) / x14 (12,50€)
- Pilons x3 (4,90€) / x5 (7,90€)
- Wings x3 (2,90€) / x6 (4,90€) / x10 (8,00€) / x15 (11,40€)
- Nuggets x6 (4,90€)
- Frites (1,70€)
- Camembert x6 (4,90€)
- Jalapeños x6 (4,90€)
- MozzaSticks x6 (4,90€)
- Cheese Naan (2,90€)

CHICKEN BOX (avec frites & boisson):
- Menu Wings x6 (6,90€) / x10 (10,00€) / x15 (13,40€)
- Menu Tenders x7 (8,90€) / x14 (14,50€)
- Menu Pilons x3 (6,90€) / x5 (9,90€)

FAMILY BOX:
- Menu XXL (18,50€)
- Menu Friends (27,90€)
- Menu Only (36,50€)
- Menu Family (34,90€)

MENU ENFANT (5,90€): Burger Junior ou 5 Nuggets ou 1 Wrap + frites + jus + compote ou Kinder

IMPORTANT:
- "Menu" = article + frites + boisson
- "Seul" = juste l'article`

package llm

import "fmt"

// BuildExtractionPrompt builds the strict-JSON extraction prompt sent
// with every call transcript.
func BuildExtractionPrompt(transcript string, menuContext string) string {
	return fmt.Sprintf(`Tu es un système d'analyse de commandes pour le restaurant Chicken Hot Dreux.

TRANSCRIPTION DE L'APPEL CLIENT :
%s

MENU DISPONIBLE :
%s

TÂCHE : Analyse cette transcription et extrais TOUTES les informations de commande.

Réponds UNIQUEMENT avec un JSON strict (pas de markdown, pas de texte avant/après) :

{
  "type_appel": "commande" ou "renseignement",
  "type_service": "Sur place" ou "À emporter" ou "Livraison" ou "Non spécifié",
  "articles": [
    {"nom": "Nom exact", "prix": 0.00, "quantite": 1}
  ],
  "adresse_livraison": "Adresse complète si livraison, sinon chaîne vide",
  "prix_total": 0.00,
  "notes": "Précisions éventuelles (épicé, nature, etc.)"
}

RÈGLES IMPORTANTES :
1. Si le client demande juste des informations/horaires/question → type_appel = "renseignement"
2. Si le client commande de la nourriture → type_appel = "commande"
3. Détecte si c'est "Menu" (avec frites+boisson) ou "Seul" (juste le sandwich)
4. Si le client dit "menu curry" → Menu Curry à 8,90€
5. Si le client dit juste "un curry" → considère que c'est un menu (défaut)
6. Détecte TOUTES les quantités mentionnées
7. Si le client se corrige, prends SEULEMENT la dernière version
8. Pour les extras (tenders, wings, pilons), détecte bien la quantité exacte
9. Calcule le prix_total en additionnant tous les articles × quantités
10. Si "sur place" mentionné → type_service = "Sur place"
11. Si "emporter" ou "à emporter" → type_service = "À emporter"
12. Si "livraison" ou "livrer" mentionné → type_service = "Livraison" et extrais l'adresse complète

EXEMPLES :
- "Un curry" → Menu Curry (8,90€)
- "Un curry seul" → Curry seul (6,90€)
- "Deux curry" → 2× Menu Curry (17,80€)
- "Un curry et 6 wings" → Menu Curry (8,90€) + 6 Wings (4,90€) = 13,80€
- "Euh non pas curry, plutôt mixte" → Seulement Menu Mixte (9,50€)
- "3 tenders" → 3 Tenders (3,50€)
- "C'est ouvert jusqu'à quelle heure ?" → renseignement`, transcript, menuContext)
}

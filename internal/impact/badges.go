package impact

import (
	model "github.com/Ri4dH/EcoTrack/internal/models"
)

// catalog est le catalogue fixe et ordonné des badges. L'ordre est celui de
// l'affichage; le moteur n'en dépend pas pour évaluer Earned.
var catalog = []model.Badge{
	{ID: "eco_starter", Name: "Eco Starter", Description: "Économisez votre première livre de CO₂", Icon: "🌱", ThresholdLb: 1},
	{ID: "eco_committed", Name: "Eco Committed", Description: "5 livres de CO₂ économisées", Icon: "🌿", ThresholdLb: 5},
	{ID: "eco_champion", Name: "Eco Champion", Description: "10 livres de CO₂ économisées", Icon: "🏆", ThresholdLb: 10},
	{ID: "eco_hero", Name: "Eco Hero", Description: "25 livres de CO₂ économisées", Icon: "🦸", ThresholdLb: 25},
	{ID: "eco_legend", Name: "Eco Legend", Description: "50 livres de CO₂ économisées", Icon: "⭐", ThresholdLb: 50},
	{ID: "planet_guardian", Name: "Planet Guardian", Description: "100 livres de CO₂ économisées", Icon: "🌍", ThresholdLb: 100},
}

// Catalog retourne une copie du catalogue de badges (Earned à false)
func Catalog() []model.Badge {
	out := make([]model.Badge, len(catalog))
	copy(out, catalog)
	return out
}

// evaluateBadges marque Earned indépendamment pour chaque badge : un
// utilisateur peut détenir tous les badges dès que le total dépasse le plus
// haut seuil. Aucune hypothèse sur l'ordre des seuils dans le catalogue.
func evaluateBadges(totalLb float64) []model.Badge {
	badges := Catalog()
	for i := range badges {
		badges[i].Earned = totalLb >= badges[i].ThresholdLb
	}
	return badges
}

package game

import "slices"

// checkCollisions resolves every colliding pair for this tick.
// A shot is consumed by its first hit and cannot take part in a later test.
func (g *Game) checkCollisions() {
	g.resolvePlayerShotsVsAliens()

	if g.mothership.Active {
		g.resolvePlayerShotsVsMothership()
		g.resolveMothershipShotsVsJet()
	}
}

// resolvePlayerShotsVsAliens removes each shot together with the first alien it overlaps
func (g *Game) resolvePlayerShotsVsAliens() {
	kept := g.playerShots[:0]
	for _, shot := range g.playerShots {
		hit := -1
		for i := range g.aliens {
			if shot.Intersects(g.aliens[i].Rect) {
				hit = i
				break
			}
		}
		if hit < 0 {
			kept = append(kept, shot)
			continue
		}

		g.aliens = slices.Delete(g.aliens, hit, hit+1)
		g.score += g.cfg.AlienReward
		g.audio.Play(SoundExplosion)
	}
	g.playerShots = kept
}

// resolvePlayerShotsVsMothership counts hits on the mothership and destroys it at the threshold
func (g *Game) resolvePlayerShotsVsMothership() {
	kept := g.playerShots[:0]
	for _, shot := range g.playerShots {
		if !g.mothership.Active || !shot.Intersects(g.mothership.Rect) {
			kept = append(kept, shot)
			continue
		}

		g.mothership.Hits++
		g.audio.Play(SoundExplosion)
		if g.mothership.Hits >= g.cfg.MothershipHitsToKill {
			g.mothership.Active = false
			g.score += g.cfg.MothershipBonus
			g.log.WithField("score", g.score).Info("mothership destroyed")
		}
	}
	g.playerShots = kept
}

// resolveMothershipShotsVsJet costs a heart for every mothership shot that reaches the jet
func (g *Game) resolveMothershipShotsVsJet() {
	kept := g.mothershipShots[:0]
	for _, shot := range g.mothershipShots {
		if !shot.Intersects(g.jet.Rect) {
			kept = append(kept, shot)
			continue
		}

		g.audio.Play(SoundExplosion)
		g.loseHeart()
	}
	g.mothershipShots = kept
}

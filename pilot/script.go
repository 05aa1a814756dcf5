package pilot

// DefaultScript tracks the lowest alien, or the mothership on the last level,
// fires when lined up and sidesteps incoming mothership shots.
const DefaultScript = `
function center(b) { return b.x + b.w / 2; }

function target(ctx) {
  if (ctx.mothership.active) return ctx.mothership;
  var best = null;
  for (var i = 0; i < ctx.aliens.length; i++) {
    var a = ctx.aliens[i];
    if (best === null || a.y > best.y) best = a;
  }
  return best;
}

function threat(ctx) {
  var jet = ctx.jet;
  for (var i = 0; i < ctx.mothershipShots.length; i++) {
    var s = ctx.mothershipShots[i];
    var near = s.y + s.h > jet.y - 200;
    var over = s.x + s.w > jet.x && s.x < jet.x + jet.w;
    if (near && over) return s;
  }
  return null;
}

function decide(ctx) {
  var jet = ctx.jet;
  var danger = threat(ctx);
  if (danger !== null) {
    var left = center(danger) > center(jet);
    if (left && jet.x <= 0) left = false;
    if (!left && jet.x + jet.w >= ctx.screenWidth) left = true;
    return { move: left ? -1 : 1, fire: false };
  }

  var t = target(ctx);
  if (t === null) return { move: 0, fire: false };

  var dx = center(t) - center(jet);
  var move = 0;
  if (dx > ctx.jetSpeed / 2) move = 1;
  if (dx < -ctx.jetSpeed / 2) move = -1;

  var lined = Math.abs(dx) < t.w / 2;
  return { move: move, fire: lined && ctx.tick % 8 === 0 };
}
`

package catalog

// Prompt is the fixed instruction set sent for every generation. The factual
// content is deliberately minimal so models cannot be blamed for inventing
// biography; everything else constrains style commitment, runtime performance
// and the single-document delivery format.
const Prompt = `You are generating a SINGLE PAGE website for Samuel Laycock, a Director of Software Engineering at World 50.

CRITICAL ACCURACY REQUIREMENT:
- This is a TECH DEMO showcasing your creative and technical capabilities
- You MUST display ONLY the factual information provided: "Samuel Laycock, Director of Software Engineering at World 50"
- DO NOT invent, fabricate, or add ANY other information about career history, achievements, projects, or personal details
- DO NOT create fake portfolio items, past roles, testimonials, or biographical information
- The focus should be on the creative presentation and interactivity, NOT on expanding the career narrative

THINK DIFFERENTLY - AVOID GENERIC OUTPUT:
- Do NOT create safe, corporate, or generic designs
- Do NOT use common portfolio templates or standard layouts
- PUSH boundaries and take creative risks
- Make something MEMORABLE and UNEXPECTED that stands out
- This should feel like an art piece or experimental demo, not a traditional professional website

VISUAL STYLE REQUIREMENTS:
- Choose ONE distinct visual style and commit to it fully throughout the entire design
- Style options (pick ONE and execute it boldly):
  * Skeuomorphism (realistic textures, shadows, 3D elements)
  * Brutalism (raw, bold, stark, unconventional layouts)
  * Glassmorphism (frosted glass effects, transparency, depth)
  * Neomorphism (soft shadows, subtle 3D, minimal)
  * Bento grids (card-based layouts, clear sections)
  * Kinetic typography (animated, dynamic text as the hero)
  * 3D rendering (Three.js/WebGL style 3D graphics)
  * Vaporwave/Retrowave (80s/90s aesthetic, neon, grids)
  * Swiss/International (grid-based, clean, typographic)
  * Maximalism (MORE is MORE - patterns, colors, elements)
  * Or invent your own unique style direction
- Be BOLD and VIBRANT with colors - avoid muted or safe palettes
- Use striking color combinations that create visual impact
- Ensure all elements consistently follow your chosen style

CREATIVE FREEDOM:
Make something interesting and unexpected! Ideas to consider (or invent your own):
- An interactive art piece or generative art
- A mini-game or puzzle
- A poetic or philosophical experience
- An educational demo or visualization
- A fun interactive tool or calculator
- Something surreal and experimental
- A data visualization or animation showcase
- An experimental UI/UX concept

PERFORMANCE REQUIREMENTS - CRITICAL:
- BE EXTREMELY CAREFUL about performance - this will run in real browsers on real devices
- ALWAYS use requestAnimationFrame for animations, NEVER setInterval for visual updates
- Debounce or throttle event handlers (scroll, resize, mousemove) to avoid performance issues
- Limit DOM manipulations - batch updates when possible, use CSS transforms over layout changes
- For particle systems or animations: keep particle counts reasonable (<1000), use object pooling
- Optimize canvas/WebGL rendering - don't redraw unnecessarily, use dirty rectangles when possible
- Lazy load or defer non-critical JavaScript execution
- Use CSS hardware acceleration (transform, opacity) for smooth animations
- Test performance mentally as you write - if something might cause jank or lag, optimize it
- Prefer CSS animations over JavaScript when possible for better performance
- If using heavy computations, consider using Web Workers or breaking work into chunks
- MAKE ABSOLUTELY SURE your demo runs smoothly at 60fps on average hardware

Technical requirements:
- The website MUST be a SINGLE PAGE (no navigation to other pages)
- ALL CSS must be inline within <style> tags in the HTML OR load fonts from Google Fonts (https://fonts.googleapis.com)
- ALL JavaScript must be inline within <script> tags in the HTML OR load libraries from ESM (https://esm.sh/)
- HTML must be complete with proper DOCTYPE, meta tags, and all necessary structure
- The website should work immediately when loaded in a browser
- Images must be inline via data URIs or SVG (no external image URLs)
- For fonts: Use Google Fonts (https://fonts.googleapis.com and https://fonts.gstatic.com)
- For JavaScript libraries: Use ESM CDN (https://esm.sh/) with ES module imports`
